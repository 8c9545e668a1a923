package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/stride/internal/catalog/domain"
	"github.com/smallbiznis/stride/internal/catalog/repository"
	categorydomain "github.com/smallbiznis/stride/internal/category/domain"
	"github.com/smallbiznis/stride/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var seedID int64 = 1000

func nextID() int64 {
	return atomic.AddInt64(&seedID, 1)
}

func newTestService(t *testing.T) (*gorm.DB, domain.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&categorydomain.Category{}, &domain.Product{}))

	svc := New(Params{
		Cfg: config.Config{
			Catalog: config.CatalogConfig{
				DefaultSort:  "created_at",
				DefaultOrder: "desc",
				PageSize:     12,
			},
		},
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return db, svc
}

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func decPtr(t *testing.T, value string) *decimal.Decimal {
	d := dec(t, value)
	return &d
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) categorydomain.Category {
	t.Helper()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := categorydomain.Category{
		ID:          nextID(),
		Name:        name,
		Slug:        slug,
		Description: name + " description",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, p domain.Product) domain.Product {
	t.Helper()
	if p.ID == 0 {
		p.ID = nextID()
	}
	if p.Slug == "" {
		p.Slug = fmt.Sprintf("product-%d", p.ID)
	}
	if len(p.Sizes) == 0 {
		p.Sizes = datatypes.NewJSONSlice([]string{"8", "9", "10"})
	}
	if len(p.Images) == 0 {
		p.Images = datatypes.NewJSONSlice([]string{"https://example.com/shoe.jpg"})
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	}
	p.UpdatedAt = p.CreatedAt
	require.NoError(t, db.Omit("Category").Create(&p).Error)
	return p
}

func TestList_ExcludesInactiveProducts(t *testing.T) {
	db, svc := newTestService(t)
	cat := seedCategory(t, db, "Running Shoes", "running-shoes")

	seedProduct(t, db, domain.Product{Name: "Nike Air Max Runner", Brand: "Nike", Color: "Black", Price: dec(t, "99.99"), CategoryID: cat.ID, IsActive: true})
	seedProduct(t, db, domain.Product{Name: "Adidas Classic Comfort", Brand: "Adidas", Color: "White", Price: dec(t, "79.99"), CategoryID: cat.ID, IsActive: true})
	seedProduct(t, db, domain.Product{Name: "Puma Street Style", Brand: "Puma", Color: "Red", Price: dec(t, "59.99"), CategoryID: cat.ID, IsActive: false})

	page, err := svc.List(context.Background(), domain.ListRequest{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Data, 2)
	for _, item := range page.Data {
		assert.True(t, item.IsActive)
	}
}

func TestList_SearchSpansNameBrandAndDescription(t *testing.T) {
	db, svc := newTestService(t)
	cat := seedCategory(t, db, "Boots", "boots")

	seedProduct(t, db, domain.Product{Name: "Nike Air Max Runner", Brand: "Nike", Color: "Black", Description: "Cushioned runner.", Price: dec(t, "99.99"), CategoryID: cat.ID, IsActive: true})
	seedProduct(t, db, domain.Product{Name: "Classic Comfort", Brand: "Adidas", Color: "White", Description: "Everyday shoe.", Price: dec(t, "79.99"), CategoryID: cat.ID, IsActive: true})
	seedProduct(t, db, domain.Product{Name: "Trail Boot", Brand: "Vans", Color: "Brown", Description: "Fully waterproof construction.", Price: dec(t, "149.99"), CategoryID: cat.ID, IsActive: true})

	cases := []struct {
		search string
		want   string
	}{
		{"air max", "Nike Air Max Runner"},
		{"ADIDAS", "Classic Comfort"},
		{"WaterProof", "Trail Boot"},
	}
	for _, tc := range cases {
		page, err := svc.List(context.Background(), domain.ListRequest{Search: tc.search})
		require.NoError(t, err)
		require.Len(t, page.Data, 1, "search %q", tc.search)
		assert.Equal(t, tc.want, page.Data[0].Name)
	}
}

func TestList_PriceRangeUsesBasePrice(t *testing.T) {
	db, svc := newTestService(t)
	cat := seedCategory(t, db, "Sandals", "sandals")

	// Base price 100 with a deep sale; the range filter must ignore the sale.
	seedProduct(t, db, domain.Product{Name: "Discounted", Brand: "Nike", Color: "Blue", Price: dec(t, "100.00"), SalePrice: decPtr(t, "40.00"), CategoryID: cat.ID, IsActive: true})

	page, err := svc.List(context.Background(), domain.ListRequest{MinPrice: "80"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	page, err = svc.List(context.Background(), domain.ListRequest{MaxPrice: "50"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)

	page, err = svc.List(context.Background(), domain.ListRequest{MinPrice: "200", MaxPrice: "100"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
	assert.Empty(t, page.Data)
}

func TestList_FiltersCombineAsConjunction(t *testing.T) {
	db, svc := newTestService(t)
	cat := seedCategory(t, db, "Casual Sneakers", "casual-sneakers")

	seedProduct(t, db, domain.Product{Name: "A", Brand: "Nike", Color: "Black", Price: dec(t, "99.99"), CategoryID: cat.ID, IsActive: true})
	seedProduct(t, db, domain.Product{Name: "B", Brand: "Nike", Color: "White", Price: dec(t, "89.99"), CategoryID: cat.ID, IsActive: true})
	seedProduct(t, db, domain.Product{Name: "C", Brand: "Adidas", Color: "Black", Price: dec(t, "79.99"), CategoryID: cat.ID, IsActive: true})

	page, err := svc.List(context.Background(), domain.ListRequest{Brand: "Nike", Color: "Black"})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "A", page.Data[0].Name)
}

func TestList_PriceSortUsesEffectivePrice(t *testing.T) {
	db, svc := newTestService(t)
	cat := seedCategory(t, db, "Dress Shoes", "dress-shoes")

	seedProduct(t, db, domain.Product{Name: "Mid", Brand: "Nike", Color: "Black", Price: dec(t, "100.00"), CategoryID: cat.ID, IsActive: true})
	seedProduct(t, db, domain.Product{Name: "Cheapest", Brand: "Puma", Color: "Red", Price: dec(t, "200.00"), SalePrice: decPtr(t, "50.00"), CategoryID: cat.ID, IsActive: true})
	seedProduct(t, db, domain.Product{Name: "Priciest", Brand: "Vans", Color: "Navy", Price: dec(t, "150.00"), SalePrice: decPtr(t, "120.00"), CategoryID: cat.ID, IsActive: true})

	page, err := svc.List(context.Background(), domain.ListRequest{Sort: "price", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, page.Data, 3)

	assert.Equal(t, "Cheapest", page.Data[0].Name)
	assert.Equal(t, "Mid", page.Data[1].Name)
	assert.Equal(t, "Priciest", page.Data[2].Name)
	for i := 1; i < len(page.Data); i++ {
		assert.False(t, page.Data[i].DisplayPrice.LessThan(page.Data[i-1].DisplayPrice))
	}
}

func TestList_PageBeyondLastKeepsTotal(t *testing.T) {
	db, svc := newTestService(t)
	cat := seedCategory(t, db, "Boots", "boots")

	base := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		seedProduct(t, db, domain.Product{
			Name:       fmt.Sprintf("Boot %02d", i),
			Brand:      "Nike",
			Color:      "Brown",
			Price:      dec(t, "99.99"),
			CategoryID: cat.ID,
			IsActive:   true,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	page, err := svc.List(context.Background(), domain.ListRequest{Page: "2"})
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	assert.Equal(t, int64(15), page.Total)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.LastPage)

	page, err = svc.List(context.Background(), domain.ListRequest{Page: "5"})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(15), page.Total)
	assert.Equal(t, 5, page.CurrentPage)
	assert.Equal(t, 2, page.LastPage)
}

func TestList_MalformedValuesFallBack(t *testing.T) {
	db, svc := newTestService(t)
	cat := seedCategory(t, db, "Sandals", "sandals")

	base := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	seedProduct(t, db, domain.Product{Name: "Older", Brand: "Nike", Color: "Blue", Price: dec(t, "59.99"), CategoryID: cat.ID, IsActive: true, CreatedAt: base})
	seedProduct(t, db, domain.Product{Name: "Newer", Brand: "Puma", Color: "Green", Price: dec(t, "69.99"), CategoryID: cat.ID, IsActive: true, CreatedAt: base.Add(time.Hour)})

	// Unparseable numerics are treated as not supplied.
	page, err := svc.List(context.Background(), domain.ListRequest{MinPrice: "cheap", Category: "not-a-number"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	// Unknown sort and order fall back to created_at desc.
	page, err = svc.List(context.Background(), domain.ListRequest{Sort: "popularity", Order: "sideways"})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Newer", page.Data[0].Name)

	// Whitespace-only values mean "not supplied", not "match blank".
	page, err = svc.List(context.Background(), domain.ListRequest{Search: "   ", Brand: " "})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	// A malformed page defaults to 1 without touching the other filters.
	page, err = svc.List(context.Background(), domain.ListRequest{Brand: "Puma", Page: "abc"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Newer", page.Data[0].Name)

	page, err = svc.List(context.Background(), domain.ListRequest{Page: "-3"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, int64(2), page.Total)
}

func TestGetBySlug_ReturnsRelatedFromSameCategory(t *testing.T) {
	db, svc := newTestService(t)
	boots := seedCategory(t, db, "Boots", "boots")
	sandals := seedCategory(t, db, "Sandals", "sandals")

	target := seedProduct(t, db, domain.Product{Name: "Target Boot", Brand: "Nike", Color: "Brown", Price: dec(t, "149.99"), CategoryID: boots.ID, IsActive: true})
	for i := 0; i < 6; i++ {
		seedProduct(t, db, domain.Product{Name: fmt.Sprintf("Sibling %d", i), Brand: "Vans", Color: "Black", Price: dec(t, "99.99"), CategoryID: boots.ID, IsActive: true})
	}
	seedProduct(t, db, domain.Product{Name: "Hidden Sibling", Brand: "Vans", Color: "Black", Price: dec(t, "99.99"), CategoryID: boots.ID, IsActive: false})
	seedProduct(t, db, domain.Product{Name: "Other Category", Brand: "Puma", Color: "Red", Price: dec(t, "49.99"), CategoryID: sandals.ID, IsActive: true})

	detail, err := svc.GetBySlug(context.Background(), target.Slug)
	require.NoError(t, err)

	assert.Equal(t, target.ID, detail.Product.ID)
	assert.Equal(t, boots.Name, detail.Product.Category.Name)
	require.Len(t, detail.Related, domain.RelatedLimit)
	for _, related := range detail.Related {
		assert.NotEqual(t, target.ID, related.ID)
		assert.Equal(t, boots.ID, related.CategoryID)
		assert.True(t, related.IsActive)
	}
}

func TestGetBySlug_UnknownSlug(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.GetBySlug(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetBySlug(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFacetValues_SpanWholeCatalog(t *testing.T) {
	db, svc := newTestService(t)
	cat := seedCategory(t, db, "Casual Sneakers", "casual-sneakers")

	seedProduct(t, db, domain.Product{Name: "A", Brand: "Nike", Color: "Black", Price: dec(t, "99.99"), CategoryID: cat.ID, IsActive: true})
	seedProduct(t, db, domain.Product{Name: "B", Brand: "Nike", Color: "White", Price: dec(t, "89.99"), CategoryID: cat.ID, IsActive: true})
	// Facet values include what only inactive products carry.
	seedProduct(t, db, domain.Product{Name: "C", Brand: "Adidas", Color: "Green", Price: dec(t, "79.99"), CategoryID: cat.ID, IsActive: false})

	facets, err := svc.FacetValues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Adidas", "Nike"}, facets.Brands)
	assert.Equal(t, []string{"Black", "Green", "White"}, facets.Colors)
}

func TestFeaturedAndLatest_CapAndOrder(t *testing.T) {
	db, svc := newTestService(t)
	cat := seedCategory(t, db, "Running Shoes", "running-shoes")

	base := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		seedProduct(t, db, domain.Product{
			Name:       fmt.Sprintf("Runner %02d", i),
			Brand:      "ASICS",
			Color:      "Gray",
			Price:      dec(t, "119.99"),
			CategoryID: cat.ID,
			IsFeatured: i < 2,
			IsActive:   true,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}
	seedProduct(t, db, domain.Product{Name: "Inactive Featured", Brand: "ASICS", Color: "Gray", Price: dec(t, "119.99"), CategoryID: cat.ID, IsFeatured: true, IsActive: false})

	featured, err := svc.Featured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 2)
	for _, item := range featured {
		assert.True(t, item.IsFeatured)
		assert.True(t, item.IsActive)
	}

	latest, err := svc.Latest(context.Background())
	require.NoError(t, err)
	require.Len(t, latest, domain.HomeSectionLimit)
	assert.Equal(t, "Runner 09", latest[0].Name)
}
