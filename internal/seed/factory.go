package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	catalogdomain "github.com/smallbiznis/stride/internal/catalog/domain"
	"gorm.io/datatypes"
)

var (
	brands = []string{"Nike", "Adidas", "Puma", "Reebok", "New Balance", "Converse", "Vans", "ASICS"}
	colors = []string{"Black", "White", "Blue", "Red", "Gray", "Brown", "Navy", "Green"}

	sizeRuns = [][]string{
		{"6", "7", "8", "9", "10", "11"},
		{"5.5", "6.5", "7.5", "8.5", "9.5", "10.5"},
		{"UK 5", "UK 6", "UK 7", "UK 8", "UK 9", "UK 10"},
	}

	modelNames = []string{
		"Air Max Runner",
		"Classic Comfort",
		"Urban Walker",
		"Sport Elite",
		"Street Style",
		"Performance Pro",
		"Casual Flex",
		"Dynamic Motion",
		"Premium Leather",
		"Lifestyle Essential",
	}

	stockImages = []string{
		"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400",
		"https://images.unsplash.com/photo-1560769629-975ec94e6a86?w=400",
		"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=400",
	}
)

// newDemoProduct builds one randomized catalog entry. Roughly 30% of products
// get a sale price strictly below the list price.
func newDemoProduct(rng *rand.Rand, node *snowflake.Node, categoryID int64, now time.Time) catalogdomain.Product {
	brand := brands[rng.Intn(len(brands))]
	name := brand + " " + modelNames[rng.Intn(len(modelNames))]

	priceCents := int64(4999 + rng.Intn(25001))
	price := decimal.New(priceCents, -2)

	var salePrice *decimal.Decimal
	if rng.Intn(100) < 30 {
		saleCents := int64(2999) + rng.Int63n(priceCents-1000-2999+1)
		d := decimal.New(saleCents, -2)
		salePrice = &d
	}

	id := node.Generate().Int64()
	return catalogdomain.Product{
		ID:            id,
		Name:          name,
		Slug:          slug.Make(fmt.Sprintf("%s-%d", name, id)),
		Description:   "Engineered for all-day comfort with a breathable upper and cushioned midsole.",
		Price:         price,
		SalePrice:     salePrice,
		Brand:         brand,
		Color:         colors[rng.Intn(len(colors))],
		Sizes:         datatypes.NewJSONSlice(sizeRuns[rng.Intn(len(sizeRuns))]),
		Images:        datatypes.NewJSONSlice(stockImages),
		CategoryID:    categoryID,
		IsFeatured:    rng.Intn(100) < 20,
		IsActive:      true,
		StockQuantity: rng.Intn(51),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
