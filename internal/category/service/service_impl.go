package service

import (
	"context"

	"github.com/smallbiznis/stride/internal/category/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("category.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	return s.repo.FindAllWithActiveCounts(ctx, s.db)
}
