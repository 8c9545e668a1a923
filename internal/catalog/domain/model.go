package domain

import (
	"time"

	"github.com/shopspring/decimal"
	categorydomain "github.com/smallbiznis/stride/internal/category/domain"
	"gorm.io/datatypes"
)

type Product struct {
	ID            int64                       `json:"id" gorm:"primaryKey"`
	Name          string                      `json:"name" gorm:"type:text;not null;index"`
	Slug          string                      `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description   string                      `json:"description" gorm:"type:text;not null"`
	Price         decimal.Decimal             `json:"price" gorm:"type:decimal(10,2);not null;index"`
	SalePrice     *decimal.Decimal            `json:"sale_price" gorm:"type:decimal(10,2)"`
	Brand         string                      `json:"brand" gorm:"type:text;not null;index"`
	Color         string                      `json:"color" gorm:"type:text;not null;index"`
	Sizes         datatypes.JSONSlice[string] `json:"sizes" gorm:"not null"`
	Images        datatypes.JSONSlice[string] `json:"images" gorm:"not null"`
	CategoryID    int64                       `json:"category_id" gorm:"not null;index"`
	Category      categorydomain.Category     `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	IsFeatured    bool                        `json:"is_featured" gorm:"not null;default:false;index"`
	IsActive      bool                        `json:"is_active" gorm:"not null;default:true;index:idx_products_active_created,priority:1"`
	StockQuantity int                         `json:"stock_quantity" gorm:"not null;default:0"`
	CreatedAt     time.Time                   `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_products_active_created,priority:2"`
	UpdatedAt     time.Time                   `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }
