package domain

import "time"

type Category struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:text;not null"`
	Slug        string    `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Image       *string   `json:"image" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Category) TableName() string { return "categories" }

// CategoryWithCount annotates a category with the number of active products
// assigned to it. The count is computed at query time, never stored.
type CategoryWithCount struct {
	Category
	ProductsCount int64 `json:"products_count"`
}
