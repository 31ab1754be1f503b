package calculator

import (
	"github.com/shopspring/decimal"
)

var (
	// MarkupRate turns a cost basis into the customer-facing price.
	MarkupRate = decimal.RequireFromString("1.10")

	// ProfitRate is the share of the cost basis kept as profit per unit.
	ProfitRate = decimal.RequireFromString("0.10")
)

// CurrencyPlaces is the precision amounts are rounded to before they are
// compared or recorded.
const CurrencyPlaces = 2

// Line represents a single priced line for totals.
type Line struct {
	Cost     decimal.Decimal
	Quantity int
}

// SellingPrice returns cost with the store markup applied.
func SellingPrice(cost decimal.Decimal) decimal.Decimal {
	return cost.Mul(MarkupRate)
}

// UnitProfit returns the profit earned on one unit sold at SellingPrice.
func UnitProfit(cost decimal.Decimal) decimal.Decimal {
	return cost.Mul(ProfitRate)
}

// RoundCurrency rounds d half away from zero to CurrencyPlaces.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// Total computes the amount owed for lines:
// total = Σ cost × 1.10 × quantity
// The result is exact; callers round with RoundCurrency when presenting or
// comparing against tendered cash.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(SellingPrice(l.Cost).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Profit computes Σ cost × 0.10 × quantity over lines.
func Profit(lines []Line) decimal.Decimal {
	profit := decimal.Zero
	for _, l := range lines {
		profit = profit.Add(UnitProfit(l.Cost).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return profit
}
