package export

import (
	"strconv"

	"github.com/safar/go-dataset-gen/internal/models"
)

const (
	customersFile = "customers.csv"
	ordersFile    = "orders.csv"
	productsFile  = "products.csv"
)

const dateLayout = "2006-01-02"

type table struct {
	file   string
	header []string
	rows   [][]string
}

func customersTable(customers []models.Customer) table {
	t := table{
		file:   customersFile,
		header: []string{"customer_id", "age", "gender", "signup_date", "location", "customer_segment"},
		rows:   make([][]string, 0, len(customers)),
	}
	for _, c := range customers {
		t.rows = append(t.rows, []string{
			strconv.Itoa(c.CustomerID),
			strconv.Itoa(c.Age),
			c.Gender,
			c.SignupDate.Format(dateLayout),
			c.Location,
			c.Segment,
		})
	}
	return t
}

func ordersTable(orders []models.Order) table {
	t := table{
		file:   ordersFile,
		header: []string{"order_id", "customer_id", "order_date", "total_amount"},
		rows:   make([][]string, 0, len(orders)),
	}
	for _, o := range orders {
		t.rows = append(t.rows, []string{
			strconv.Itoa(o.OrderID),
			strconv.Itoa(o.CustomerID),
			o.OrderDate.Format(dateLayout),
			o.TotalAmount.StringFixed(2),
		})
	}
	return t
}

// productsTable flattens every order's line items into one row each. Despite
// the file name this is NOT the catalog: a product_id repeats for every order
// (and every duplicate line item) it was sampled into, tagged with that
// order's id and quantity. The price is the catalog price, carried through
// unchanged.
func productsTable(orders []models.Order) table {
	t := table{
		file:   productsFile,
		header: []string{"product_id", "product_name", "order_id", "category", "price", "quantity"},
	}
	for _, o := range orders {
		for _, item := range o.Items {
			t.rows = append(t.rows, []string{
				strconv.Itoa(item.ProductID),
				item.Name,
				strconv.Itoa(item.OrderID),
				item.Category,
				item.Price.StringFixed(2),
				strconv.Itoa(item.Quantity),
			})
		}
	}
	return t
}
