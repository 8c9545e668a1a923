package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListFilter is the normalized form of ListRequest: parsed values, validated
// sort/order, nil for anything not supplied.
type ListFilter struct {
	Search     string
	CategoryID *int64
	Brand      string
	Color      string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       string
	Order      string
	Offset     int
	Limit      int
}

type Repository interface {
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Product, int64, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Product, error)
	FindRelated(ctx context.Context, db *gorm.DB, categoryID, excludeID int64, limit int) ([]Product, error)
	FindFeatured(ctx context.Context, db *gorm.DB, limit int) ([]Product, error)
	FindLatest(ctx context.Context, db *gorm.DB, limit int) ([]Product, error)
	DistinctBrands(ctx context.Context, db *gorm.DB) ([]string, error)
	DistinctColors(ctx context.Context, db *gorm.DB) ([]string, error)
}
