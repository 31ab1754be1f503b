package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk format of Transaction.Date.
const DateLayout = "2006-01-02"

// Transaction is one ledger entry summarising a whole checkout.
type Transaction struct {
	// Date is the calendar day of the checkout; the time of day is dropped.
	Date time.Time

	// TotalSale is the amount charged, after markup.
	TotalSale decimal.Decimal

	// TotalProfit is the markup portion of TotalSale.
	TotalProfit decimal.Decimal

	Tendered decimal.Decimal
	Change   decimal.Decimal
}

// Day truncates t to a calendar day in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Receipt is what a successful checkout hands back to the caller.
type Receipt struct {
	Transaction Transaction
	Lines       []CartLine
}
