package gen

import (
	"github.com/safar/go-dataset-gen/internal/models"
	"github.com/shopspring/decimal"
)

// Orders returns OrderCount records with sequential ids starting at 1. Each
// order belongs to a customer picked uniformly with replacement, carries
// between MinLineItems and MaxLineItems line items sampled from the catalog
// with replacement (duplicates stay separate line items), and totals the
// price times quantity of every line item. Order dates fall within the year
// before the generator was created.
func (g *Generator) Orders(customers []models.Customer, products []models.Product) ([]models.Order, error) {
	if len(customers) == 0 {
		return nil, ErrNoCustomers
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	orderFrom := g.now.AddDate(-1, 0, 0)

	orders := make([]models.Order, 0, g.cfg.OrderCount)
	for i := 1; i <= g.cfg.OrderCount; i++ {
		customer := customers[g.faker.IntRange(0, len(customers)-1)]

		itemCount := g.faker.IntRange(g.cfg.MinLineItems, g.cfg.MaxLineItems)
		items := make([]models.LineItem, 0, itemCount)
		total := decimal.Zero
		for j := 0; j < itemCount; j++ {
			item := models.LineItem{
				Product:  products[g.faker.IntRange(0, len(products)-1)],
				OrderID:  i,
				Quantity: g.faker.IntRange(1, 5),
			}
			items = append(items, item)
			total = total.Add(item.Subtotal())
		}

		orders = append(orders, models.Order{
			OrderID:     i,
			CustomerID:  customer.CustomerID,
			OrderDate:   g.faker.DateRange(orderFrom, g.now),
			Items:       items,
			TotalAmount: total,
		})
	}

	return orders, nil
}
