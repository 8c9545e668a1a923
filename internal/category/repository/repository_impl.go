package repository

import (
	"context"

	"github.com/smallbiznis/stride/internal/category/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	var items []domain.Category
	err := db.WithContext(ctx).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindAllWithActiveCounts computes every count in one aggregate query. The
// join condition, not a WHERE clause, restricts the count to active products
// so categories with no active products still appear with a zero count.
func (r *repo) FindAllWithActiveCounts(ctx context.Context, db *gorm.DB) ([]domain.CategoryWithCount, error) {
	var items []domain.CategoryWithCount
	err := db.WithContext(ctx).
		Model(&domain.Category{}).
		Select("categories.*, COUNT(products.id) AS products_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id AND products.is_active = ?", true).
		Group("categories.id").
		Order("categories.name ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
