package seed

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/smallbiznis/stride/internal/catalog/domain"
	categorydomain "github.com/smallbiznis/stride/internal/category/domain"
	"github.com/smallbiznis/stride/pkg/db"
	"gorm.io/gorm"
)

var demoCategories = []struct {
	Name        string
	Slug        string
	Description string
}{
	{"Running Shoes", "running-shoes", "High-performance athletic footwear designed for running and jogging."},
	{"Casual Sneakers", "casual-sneakers", "Comfortable everyday shoes perfect for casual wear and lifestyle activities."},
	{"Dress Shoes", "dress-shoes", "Elegant formal footwear suitable for business and special occasions."},
	{"Boots", "boots", "Sturdy and durable footwear for various weather conditions and outdoor activities."},
	{"Sandals", "sandals", "Open-toe footwear perfect for warm weather and casual occasions."},
	{"High Heels", "high-heels", "Stylish elevated footwear for formal events and fashion statements."},
}

// EnsureDemoCatalog seeds the demo categories and products for startup
// bootstrap. It is idempotent: a database that already has categories is left
// untouched.
func EnsureDemoCatalog(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if node == nil {
		return errors.New("seed id generator is required")
	}

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&categorydomain.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		categoryIDs := make([]int64, 0, len(demoCategories))
		for _, c := range demoCategories {
			category := categorydomain.Category{
				ID:          node.Generate().Int64(),
				Name:        c.Name,
				Slug:        c.Slug,
				Description: c.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			categoryIDs = append(categoryIDs, category.ID)
		}

		for _, categoryID := range categoryIDs {
			n := 8 + rng.Intn(5)
			for i := 0; i < n; i++ {
				product := newDemoProduct(rng, node, categoryID, now)
				if err := createDemoProduct(tx, product); err != nil {
					return err
				}
			}
		}

		// A handful of guaranteed-featured products so the landing page is
		// never empty.
		featuredCategory := categoryIDs[rng.Intn(len(categoryIDs))]
		for i := 0; i < 6; i++ {
			product := newDemoProduct(rng, node, featuredCategory, now)
			product.IsFeatured = true
			if err := createDemoProduct(tx, product); err != nil {
				return err
			}
		}

		return nil
	})
}

// createDemoProduct tolerates slug collisions from the randomized factory by
// skipping the duplicate instead of aborting the whole bootstrap.
func createDemoProduct(tx *gorm.DB, product catalogdomain.Product) error {
	err := tx.Create(&product).Error
	if err != nil && db.IsDuplicateKeyErr(err) {
		return nil
	}
	return err
}
