package gen

import (
	"github.com/safar/go-dataset-gen/internal/models"
)

// Customers returns CustomerCount records with sequential ids starting at 1.
// Signup dates fall within the three years before the generator was created.
func (g *Generator) Customers() []models.Customer {
	signupFrom := g.now.AddDate(-3, 0, 0)

	customers := make([]models.Customer, 0, g.cfg.CustomerCount)
	for i := 1; i <= g.cfg.CustomerCount; i++ {
		customers = append(customers, models.Customer{
			CustomerID: i,
			Age:        g.faker.IntRange(18, 80),
			Gender:     g.faker.RandomString(models.Genders),
			SignupDate: g.faker.DateRange(signupFrom, g.now),
			Location:   g.faker.RandomString(models.Locations),
			Segment:    g.faker.RandomString(models.Segments),
		})
	}

	return customers
}
