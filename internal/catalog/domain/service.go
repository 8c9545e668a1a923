package domain

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	categorydomain "github.com/smallbiznis/stride/internal/category/domain"
	"github.com/smallbiznis/stride/pkg/db/pagination"
)

const (
	// HomeSectionLimit caps the featured and latest sections of the landing page.
	HomeSectionLimit = 8
	// RelatedLimit caps the related-product suggestions on a detail page.
	RelatedLimit = 4
)

type Service interface {
	// List returns one page of active products matching the supplied filters.
	// Every filter is optional; a blank value means "not supplied". Unknown
	// sort or order values fall back to the configured defaults instead of
	// failing.
	List(ctx context.Context, req ListRequest) (*pagination.Page[Response], error)
	// FacetValues returns the distinct brand and color values across the whole
	// catalog, independent of any filter state.
	FacetValues(ctx context.Context) (*Facets, error)
	// GetBySlug resolves a product by slug together with its related products.
	GetBySlug(ctx context.Context, slug string) (*Detail, error)
	// Featured returns up to HomeSectionLimit active featured products.
	Featured(ctx context.Context) ([]Response, error)
	// Latest returns up to HomeSectionLimit most recently added active products.
	Latest(ctx context.Context) ([]Response, error)
}

// ListRequest carries the raw filter values as bound from the query string.
// Every field stays a string so one malformed value never fails the bind and
// never disturbs the others; parsing and fallback happen in the service.
type ListRequest struct {
	Search   string
	Category string
	Brand    string
	Color    string
	MinPrice string
	MaxPrice string
	Sort     string
	Order    string
	Page     string
}

// QueryValues returns the supplied (non-blank) filter fields as query
// parameters, used both for pager links and for echoing filters back to the
// frontend.
func (r ListRequest) QueryValues() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values.Set(key, trimmed)
		}
	}
	set("search", r.Search)
	set("category", r.Category)
	set("brand", r.Brand)
	set("color", r.Color)
	set("min_price", r.MinPrice)
	set("max_price", r.MaxPrice)
	set("sort", r.Sort)
	set("order", r.Order)
	return values
}

type Facets struct {
	Brands []string `json:"brands"`
	Colors []string `json:"colors"`
}

// Response is the serialized product shape, stored attributes plus the
// derived pricing fields.
type Response struct {
	ID            int64                   `json:"id"`
	Name          string                  `json:"name"`
	Slug          string                  `json:"slug"`
	Description   string                  `json:"description"`
	Price         decimal.Decimal         `json:"price"`
	SalePrice     *decimal.Decimal        `json:"sale_price"`
	Brand         string                  `json:"brand"`
	Color         string                  `json:"color"`
	Sizes         []string                `json:"sizes"`
	Images        []string                `json:"images"`
	CategoryID    int64                   `json:"category_id"`
	Category      categorydomain.Category `json:"category"`
	IsFeatured    bool                    `json:"is_featured"`
	IsActive      bool                    `json:"is_active"`
	StockQuantity int                     `json:"stock_quantity"`
	DisplayPrice  decimal.Decimal         `json:"display_price"`
	IsOnSale      bool                    `json:"is_on_sale"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

type Detail struct {
	Product Response   `json:"product"`
	Related []Response `json:"relatedProducts"`
}

var ErrNotFound = errors.New("not_found")

// Defaults are the explicit listing defaults; they replace any ambient
// request-level fallback state.
type Defaults struct {
	Sort     string
	Order    string
	PageSize int
}
