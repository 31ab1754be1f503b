package calculator

import (
	"github.com/shopspring/decimal"
)

// Sale represents a sold line with the minimal information needed for the profit report.
type Sale struct {
	Name         string
	Quantity     int
	Cost         decimal.Decimal
	SellingPrice decimal.Decimal
}

// SaleProfit is one row of the profit report.
type SaleProfit struct {
	Name         string
	Quantity     int
	Cost         decimal.Decimal
	SellingPrice decimal.Decimal
	Profit       decimal.Decimal // (selling - cost) × quantity
}

// LedgerEntry represents a transaction with the amounts needed for totals.
type LedgerEntry struct {
	TotalSale   decimal.Decimal
	TotalProfit decimal.Decimal
}

// LedgerTotals aggregates the whole ledger.
type LedgerTotals struct {
	Transactions int
	TotalSales   decimal.Decimal
	TotalProfit  decimal.Decimal
}

// SaleProfits computes per-line profit for each sale, in input order.
func SaleProfits(sales []Sale) []SaleProfit {
	rows := make([]SaleProfit, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, SaleProfit{
			Name:         s.Name,
			Quantity:     s.Quantity,
			Cost:         s.Cost,
			SellingPrice: s.SellingPrice,
			Profit:       s.SellingPrice.Sub(s.Cost).Mul(decimal.NewFromInt(int64(s.Quantity))),
		})
	}
	return rows
}

// SumLedger totals sales and profit across every ledger entry.
// Totals come from the ledger rather than the sales lines because the
// ledger survives restarts and the sales lines do not.
func SumLedger(entries []LedgerEntry) LedgerTotals {
	totals := LedgerTotals{
		Transactions: len(entries),
		TotalSales:   decimal.Zero,
		TotalProfit:  decimal.Zero,
	}
	for _, e := range entries {
		totals.TotalSales = totals.TotalSales.Add(e.TotalSale)
		totals.TotalProfit = totals.TotalProfit.Add(e.TotalProfit)
	}
	return totals
}
