package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/smallbiznis/stride/internal/catalog/domain"
)

// listProductsQuery binds the raw listing query string. Every field is a
// string so a malformed value cannot fail the bind and knock out the valid
// filters next to it; parsing and fallback live in the catalog service.
type listProductsQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Brand    string `form:"brand"`
	Color    string `form:"color"`
	MinPrice string `form:"min_price"`
	MaxPrice string `form:"max_price"`
	Sort     string `form:"sort"`
	Order    string `form:"order"`
	Page     string `form:"page"`
}

func (q listProductsQuery) toRequest() catalogdomain.ListRequest {
	return catalogdomain.ListRequest{
		Search:   q.Search,
		Category: q.Category,
		Brand:    q.Brand,
		Color:    q.Color,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Sort:     q.Sort,
		Order:    q.Order,
		Page:     q.Page,
	}
}

// Home serves the landing page payload: featured and latest products plus the
// category directory with active-product counts.
func (s *Server) Home(c *gin.Context) {
	ctx := c.Request.Context()

	featured, err := s.catalogSvc.Featured(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	latest, err := s.catalogSvc.Latest(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	categories, err := s.categorySvc.ListWithCounts(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"featuredProducts": featured,
		"latestProducts":   latest,
		"categories":       categories,
	})
}

// ListProducts serves the filterable product listing together with everything
// the filter sidebar needs: categories with counts, facet values, and an echo
// of the filters that were actually supplied.
func (s *Server) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var query listProductsQuery
	_ = c.ShouldBindQuery(&query)
	req := query.toRequest()

	page, err := s.catalogSvc.List(ctx, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	categories, err := s.categorySvc.ListWithCounts(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	facets, err := s.catalogSvc.FacetValues(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filters := gin.H{}
	for key, values := range req.QueryValues() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   page,
		"categories": categories,
		"brands":     facets.Brands,
		"colors":     facets.Colors,
		"filters":    filters,
	})
}

// GetProductBySlug serves the product detail payload with related products
// from the same category.
func (s *Server) GetProductBySlug(c *gin.Context) {
	detail, err := s.catalogSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
