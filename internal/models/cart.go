package models

import "github.com/shopspring/decimal"

// CartLine is one pending purchase line.
// Lines are keyed by product name; adding a product that is already in the
// cart increments Quantity instead of appending a second line.
type CartLine struct {
	Name string

	// Price is the cost basis copied from the product when the line was created.
	Price decimal.Decimal

	Quantity int
}
