package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	catalogdomain "github.com/smallbiznis/stride/internal/catalog/domain"
	"github.com/smallbiznis/stride/internal/category/domain"
	"github.com/smallbiznis/stride/internal/category/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*gorm.DB, domain.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Category{}, &catalogdomain.Product{}))

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return db, svc
}

func seedCategory(t *testing.T, db *gorm.DB, id int64, name, slug string) domain.Category {
	t.Helper()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := domain.Category{
		ID:          id,
		Name:        name,
		Slug:        slug,
		Description: name + " description",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, id, categoryID int64, active bool) {
	t.Helper()
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	p := catalogdomain.Product{
		ID:         id,
		Name:       fmt.Sprintf("Product %d", id),
		Slug:       fmt.Sprintf("product-%d", id),
		Price:      decimal.NewFromInt(100),
		Brand:      "Nike",
		Color:      "Black",
		Sizes:      datatypes.NewJSONSlice([]string{"8", "9"}),
		Images:     datatypes.NewJSONSlice([]string{"https://example.com/shoe.jpg"}),
		CategoryID: categoryID,
		IsActive:   active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, db.Omit("Category").Create(&p).Error)
}

func TestList_OrderedByName(t *testing.T) {
	db, svc := newTestService(t)

	seedCategory(t, db, 1, "Sandals", "sandals")
	seedCategory(t, db, 2, "Boots", "boots")
	seedCategory(t, db, 3, "Running Shoes", "running-shoes")

	categories, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "Boots", categories[0].Name)
	assert.Equal(t, "Running Shoes", categories[1].Name)
	assert.Equal(t, "Sandals", categories[2].Name)
}

func TestListWithCounts_CountsOnlyActiveProducts(t *testing.T) {
	db, svc := newTestService(t)

	boots := seedCategory(t, db, 1, "Boots", "boots")
	sandals := seedCategory(t, db, 2, "Sandals", "sandals")

	seedProduct(t, db, 10, boots.ID, true)
	seedProduct(t, db, 11, boots.ID, true)
	seedProduct(t, db, 12, boots.ID, false)

	categories, err := svc.ListWithCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, "Boots", categories[0].Name)
	assert.Equal(t, int64(2), categories[0].ProductsCount)

	// Categories without active products stay listed with a zero count.
	assert.Equal(t, sandals.Name, categories[1].Name)
	assert.Equal(t, int64(0), categories[1].ProductsCount)
}
