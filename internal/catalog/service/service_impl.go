package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/stride/internal/catalog/domain"
	"github.com/smallbiznis/stride/internal/config"
	"github.com/smallbiznis/stride/internal/observability/metrics"
	"github.com/smallbiznis/stride/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// listingPath is the route the pager links point back at.
const listingPath = "/products"

var sortColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
}

type Params struct {
	fx.In

	Cfg     config.Config
	DB      *gorm.DB
	Log     *zap.Logger
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	metrics  *metrics.Metrics
	defaults domain.Defaults
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("catalog.service"),
		repo:     p.Repo,
		metrics:  p.Metrics,
		defaults: normalizeDefaults(p.Cfg.Catalog),
	}
}

func normalizeDefaults(cfg config.CatalogConfig) domain.Defaults {
	defaults := domain.Defaults{
		Sort:     strings.TrimSpace(cfg.DefaultSort),
		Order:    strings.ToLower(strings.TrimSpace(cfg.DefaultOrder)),
		PageSize: cfg.PageSize,
	}
	if !sortColumns[defaults.Sort] {
		defaults.Sort = "created_at"
	}
	if defaults.Order != "asc" && defaults.Order != "desc" {
		defaults.Order = "desc"
	}
	if defaults.PageSize < 1 {
		defaults.PageSize = 12
	}
	return defaults
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*pagination.Page[domain.Response], error) {
	filter := s.buildFilter(req)

	page := parsePage(req.Page)
	filter.Offset = pagination.Offset(page, s.defaults.PageSize)
	filter.Limit = s.defaults.PageSize

	items, total, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordCatalogQuery(ctx, filter.Sort, len(req.QueryValues()) > 0)

	result := pagination.New(
		s.toResponses(items),
		total,
		page,
		s.defaults.PageSize,
		listingPath,
		req.QueryValues(),
	)
	return &result, nil
}

// buildFilter normalizes the raw request: blank means "not supplied",
// malformed numeric values are treated as absent, and unknown sort/order
// values silently fall back to the defaults.
func (s *Service) buildFilter(req domain.ListRequest) domain.ListFilter {
	filter := domain.ListFilter{
		Search: strings.TrimSpace(req.Search),
		Brand:  strings.TrimSpace(req.Brand),
		Color:  strings.TrimSpace(req.Color),
	}

	if category := strings.TrimSpace(req.Category); category != "" {
		if id, err := strconv.ParseInt(category, 10, 64); err == nil {
			filter.CategoryID = &id
		}
	}
	if raw := strings.TrimSpace(req.MinPrice); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &d
		}
	}
	if raw := strings.TrimSpace(req.MaxPrice); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &d
		}
	}

	filter.Sort = strings.TrimSpace(req.Sort)
	if !sortColumns[filter.Sort] {
		filter.Sort = s.defaults.Sort
	}
	filter.Order = strings.ToLower(strings.TrimSpace(req.Order))
	if filter.Order != "asc" && filter.Order != "desc" {
		filter.Order = s.defaults.Order
	}

	return filter
}

// parsePage treats anything that is not a positive integer as page 1.
func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (s *Service) FacetValues(ctx context.Context) (*domain.Facets, error) {
	brands, err := s.repo.DistinctBrands(ctx, s.db)
	if err != nil {
		return nil, err
	}
	colors, err := s.repo.DistinctColors(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return &domain.Facets{Brands: brands, Colors: colors}, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Detail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.ErrNotFound
	}

	item, err := s.repo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	related, err := s.repo.FindRelated(ctx, s.db, item.CategoryID, item.ID, domain.RelatedLimit)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordProductView(ctx)

	return &domain.Detail{
		Product: s.toResponse(item),
		Related: s.toResponses(related),
	}, nil
}

func (s *Service) Featured(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindFeatured(ctx, s.db, domain.HomeSectionLimit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

func (s *Service) Latest(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindLatest(ctx, s.db, domain.HomeSectionLimit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

func (s *Service) toResponses(items []domain.Product) []domain.Response {
	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, s.toResponse(&items[i]))
	}
	return resp
}

func (s *Service) toResponse(p *domain.Product) domain.Response {
	return domain.Response{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		SalePrice:     p.SalePrice,
		Brand:         p.Brand,
		Color:         p.Color,
		Sizes:         []string(p.Sizes),
		Images:        []string(p.Images),
		CategoryID:    p.CategoryID,
		Category:      p.Category,
		IsFeatured:    p.IsFeatured,
		IsActive:      p.IsActive,
		StockQuantity: p.StockQuantity,
		DisplayPrice:  p.DisplayPrice(),
		IsOnSale:      p.IsOnSale(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
