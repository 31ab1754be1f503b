package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/calculator"
	"github.com/mmynk/clevermart/internal/metrics"
	"github.com/mmynk/clevermart/internal/models"
)

// CheckoutService turns the cart into a sale.
type CheckoutService struct {
	inventory *InventoryService
	cart      *CartService
	ledger    *LedgerService
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewCheckoutService wires the checkout to its collaborators.
func NewCheckoutService(inventory *InventoryService, cart *CartService, ledger *LedgerService, m *metrics.Metrics) *CheckoutService {
	return &CheckoutService{
		inventory: inventory,
		cart:      cart,
		ledger:    ledger,
		metrics:   m,
		now:       time.Now,
	}
}

// WithClock overrides the clock used to date transactions.
func (s *CheckoutService) WithClock(now func() time.Time) *CheckoutService {
	s.now = now
	return s
}

// Quote prices the current cart.
func (s *CheckoutService) Quote() Quote {
	lines := s.cart.Lines()
	calc := toCalcLines(lines)
	return Quote{
		Lines:  lines,
		Total:  calculator.RoundCurrency(calculator.Total(calc)),
		Profit: calculator.RoundCurrency(calculator.Profit(calc)),
	}
}

// Pay settles the cart with tendered cash.
//
// Both amounts are rounded to currency precision before comparing. If the
// cash is short nothing changes and a PaymentError is returned. Otherwise,
// in order: stock is deducted and the inventory saved, one sales record per
// line and one transaction are recorded and the ledger saved, and the cart
// is cleared.
//
// A failed save does not undo the sale. The receipt is returned together
// with the save error(s) so the caller can warn the user.
func (s *CheckoutService) Pay(ctx context.Context, tendered decimal.Decimal) (*models.Receipt, error) {
	quote := s.Quote()
	if len(quote.Lines) == 0 {
		return nil, apperror.Validation(apperror.ReasonEmptyCart, "cart", "cart is empty")
	}
	if tendered.IsNegative() {
		return nil, apperror.Validation(apperror.ReasonInvalidAmount, "tendered",
			"amount tendered cannot be negative")
	}

	paid := calculator.RoundCurrency(tendered)
	if paid.LessThan(quote.Total) {
		s.metrics.Rejected("payment")
		slog.Warn("Payment rejected", "total", quote.Total, "tendered", paid)
		return nil, apperror.Payment("insufficient amount tendered: %s is less than %s",
			paid.StringFixed(calculator.CurrencyPlaces), quote.Total.StringFixed(calculator.CurrencyPlaces))
	}
	change := paid.Sub(quote.Total)

	var saveErrs []error

	for _, line := range quote.Lines {
		s.inventory.deduct(line.Name, line.Quantity)
	}
	s.inventory.publish()
	if err := s.inventory.Save(ctx); err != nil {
		saveErrs = append(saveErrs, err)
	}

	sales := make([]models.SalesRecord, len(quote.Lines))
	for i, line := range quote.Lines {
		sales[i] = models.SalesRecord{
			Name:         line.Name,
			Quantity:     line.Quantity,
			Cost:         line.Price,
			SellingPrice: calculator.SellingPrice(line.Price),
		}
	}
	txn := models.Transaction{
		Date:        models.Day(s.now()),
		TotalSale:   quote.Total,
		TotalProfit: quote.Profit,
		Tendered:    paid,
		Change:      change,
	}
	if err := s.ledger.Record(ctx, sales, txn); err != nil {
		saveErrs = append(saveErrs, err)
	}

	s.cart.Clear()
	s.metrics.Checkout(quote.Total, quote.Profit)
	slog.Info("Checkout completed",
		"lines", len(quote.Lines),
		"total", quote.Total,
		"tendered", paid,
		"change", change,
		"save_errors", len(saveErrs),
	)

	return &models.Receipt{Transaction: txn, Lines: quote.Lines}, errors.Join(saveErrs...)
}
