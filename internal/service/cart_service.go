package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/calculator"
	"github.com/mmynk/clevermart/internal/metrics"
	"github.com/mmynk/clevermart/internal/models"
)

// CartService holds the pending purchase. The cart is never persisted.
type CartService struct {
	inventory *InventoryService
	metrics   *metrics.Metrics
	lines     []models.CartLine
}

// NewCartService creates an empty cart drawing products from inventory.
func NewCartService(inventory *InventoryService, m *metrics.Metrics) *CartService {
	return &CartService{inventory: inventory, metrics: m}
}

// Add puts qty units of the named product in the cart.
// Stock is checked against the requested quantity but not reserved.
func (s *CartService) Add(name string, qty int) (models.CartLine, error) {
	product, err := s.inventory.Get(name)
	if err != nil {
		return models.CartLine{}, err
	}
	return s.add(product, qty)
}

func (s *CartService) add(product models.Product, qty int) (models.CartLine, error) {
	if qty < 1 {
		return models.CartLine{}, apperror.Validation(apperror.ReasonInvalidQuantity, "quantity",
			"quantity must be at least 1")
	}
	if qty > product.Quantity {
		s.metrics.Rejected("stock")
		slog.Warn("Cart add rejected", "name", product.Name, "requested", qty, "available", product.Quantity)
		return models.CartLine{}, apperror.Stock("insufficient stock for %s", product.Name)
	}

	for i := range s.lines {
		if strings.EqualFold(s.lines[i].Name, product.Name) {
			s.lines[i].Quantity += qty
			slog.Debug("Cart line incremented", "name", product.Name, "quantity", s.lines[i].Quantity)
			return s.lines[i], nil
		}
	}

	line := models.CartLine{Name: product.Name, Price: product.Price, Quantity: qty}
	s.lines = append(s.lines, line)
	slog.Debug("Cart line added", "name", product.Name, "quantity", qty)
	return line, nil
}

// Deduct takes one unit of name out of the cart. When that would leave the
// line empty the whole line is removed, but only if confirm approves.
// removed reports whether the line is gone.
func (s *CartService) Deduct(name string, confirm Confirm) (removed bool, err error) {
	for i := range s.lines {
		if !strings.EqualFold(s.lines[i].Name, name) {
			continue
		}
		if s.lines[i].Quantity > 1 {
			s.lines[i].Quantity--
			return false, nil
		}
		prompt := fmt.Sprintf("Do you want to remove %s from the cart?", s.lines[i].Name)
		if !ask(confirm, prompt) {
			return false, apperror.ConfirmationRequired("%s", prompt)
		}
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		return true, nil
	}
	return false, apperror.NotFound("%s is not in the cart", name)
}

// Clear empties the cart.
func (s *CartService) Clear() {
	s.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (s *CartService) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is Σ price × 1.10 × quantity over the cart, unrounded.
func (s *CartService) Total() decimal.Decimal {
	return calculator.Total(toCalcLines(s.lines))
}
