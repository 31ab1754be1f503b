package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/clevermart/internal/calculator"
	"github.com/mmynk/clevermart/internal/models"
)

// CatalogEntry is a product as a guest sees it.
type CatalogEntry struct {
	Name         string
	Category     models.Category
	SellingPrice decimal.Decimal
	Quantity     int
	Tier         calculator.Tier
}

// StockLevel is one row of the stock monitoring report.
type StockLevel struct {
	Name     string
	Quantity int
	Max      int
	Tier     calculator.Tier
}

// Quote summarises the cart before payment.
type Quote struct {
	Lines  []models.CartLine
	Total  decimal.Decimal // rounded to currency precision
	Profit decimal.Decimal
}

// SalesReport is the administrator's profit view.
type SalesReport struct {
	Sales  []calculator.SaleProfit
	Totals calculator.LedgerTotals
}

func toCalcLines(lines []models.CartLine) []calculator.Line {
	out := make([]calculator.Line, len(lines))
	for i, l := range lines {
		out[i] = calculator.Line{Cost: l.Price, Quantity: l.Quantity}
	}
	return out
}
