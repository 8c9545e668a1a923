package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Category, error)
	FindAllWithActiveCounts(ctx context.Context, db *gorm.DB) ([]CategoryWithCount, error)
}
