package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID int
	Age        int
	Gender     string
	SignupDate time.Time
	Location   string
	Segment    string
}

type Product struct {
	ProductID int
	Name      string
	Category  string
	Price     decimal.Decimal
}

// LineItem is a catalog snapshot bound to one order. The same product may
// appear in any number of orders, and more than once within a single order.
type LineItem struct {
	Product
	OrderID  int
	Quantity int
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Order struct {
	OrderID     int
	CustomerID  int
	OrderDate   time.Time
	Items       []LineItem
	TotalAmount decimal.Decimal
}

var (
	Genders    = []string{"Male", "Female", "Other"}
	Locations  = []string{"Portland", "Chicago", "Toronto", "New York", "San Francisco", "Los Angeles"}
	Segments   = []string{"A", "B", "C", "D"}
	Categories = []string{"Electronics", "Books", "Home", "Toys", "Beauty"}
)
