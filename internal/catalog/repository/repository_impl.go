package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/smallbiznis/stride/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// List applies the filter conjunction over active products, counts the
// matches, then fetches one page. The count runs before ordering and limits
// so the total reflects the whole match set.
func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Product, int64, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("is_active = ?", true)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		stmt = stmt.Where(
			"(LOWER(name) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(description) LIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if filter.CategoryID != nil {
		stmt = stmt.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Brand != "" {
		stmt = stmt.Where("brand = ?", filter.Brand)
	}
	if filter.Color != "" {
		stmt = stmt.Where("color = ?", filter.Color)
	}
	if filter.MinPrice != nil {
		stmt = stmt.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		stmt = stmt.Where("price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Product
	err := stmt.
		Order(orderClause(filter.Sort, filter.Order)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Preload("Category").
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// orderClause maps the validated sort key onto SQL. Price sorts by the
// effective price (sale price when present); the id tie-break keeps ordering
// stable across repeated identical queries.
func orderClause(sort, order string) string {
	dir := "DESC"
	if order == "asc" {
		dir = "ASC"
	}
	switch sort {
	case "price":
		return "COALESCE(sale_price, price) " + dir + ", id " + dir
	case "name":
		return "name " + dir + ", id " + dir
	default:
		return "created_at " + dir + ", id " + dir
	}
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).
		Preload("Category").
		Where("slug = ?", slug).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindRelated(ctx context.Context, db *gorm.DB, categoryID, excludeID int64, limit int) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).
		Where("category_id = ? AND id <> ? AND is_active = ?", categoryID, excludeID, true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Preload("Category").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindFeatured(ctx context.Context, db *gorm.DB, limit int) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Preload("Category").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindLatest(ctx context.Context, db *gorm.DB, limit int) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Preload("Category").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DistinctBrands spans the full catalog, active and inactive alike: the
// filter controls list every value that exists, not just the ones currently
// purchasable.
func (r *repo) DistinctBrands(ctx context.Context, db *gorm.DB) ([]string, error) {
	return r.distinctColumn(ctx, db, "brand")
}

func (r *repo) DistinctColors(ctx context.Context, db *gorm.DB) ([]string, error) {
	return r.distinctColumn(ctx, db, "color")
}

func (r *repo) distinctColumn(ctx context.Context, db *gorm.DB, column string) ([]string, error) {
	values := make([]string, 0)
	err := db.WithContext(ctx).
		Model(&domain.Product{}).
		Distinct().
		Order(column + " ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
