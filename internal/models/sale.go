package models

import "github.com/shopspring/decimal"

// SalesRecord is a per-line sale kept for the profit report.
// Records are append-only and are not persisted.
type SalesRecord struct {
	Name     string
	Quantity int

	// Cost is the product price at sale time.
	Cost decimal.Decimal

	// SellingPrice is Cost with the store markup applied.
	SellingPrice decimal.Decimal
}
