package gen

import (
	"github.com/safar/go-dataset-gen/internal/models"
	"github.com/shopspring/decimal"
)

// Catalog returns ProductCount records with sequential ids starting at 1.
// Prices are drawn in whole cents between 1.00 and 100.00 so their textual
// form always carries exactly two decimals.
func (g *Generator) Catalog() []models.Product {
	products := make([]models.Product, 0, g.cfg.ProductCount)
	for i := 1; i <= g.cfg.ProductCount; i++ {
		products = append(products, models.Product{
			ProductID: i,
			Name:      g.faker.ProductName(),
			Category:  g.faker.RandomString(models.Categories),
			Price:     decimal.New(int64(g.faker.IntRange(100, 10000)), -2),
		})
	}

	return products
}
