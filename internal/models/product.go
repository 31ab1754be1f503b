package models

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups products on the catalog screens.
type Category string

const (
	CategorySnacks    Category = "Snacks & Sweets"
	CategoryBeverages Category = "Beverages"
	CategoryOther     Category = "Other"

	// CategoryAll is only meaningful as a filter value.
	CategoryAll Category = "All"
)

// Categories lists every category a product may belong to.
var Categories = []Category{CategorySnacks, CategoryBeverages, CategoryOther}

// ParseCategory maps user or file input onto a known category.
// Empty input yields CategoryOther; the bool is false for unknown values.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryOther, true
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return Category(s), false
}

// Product represents one inventory entry.
type Product struct {
	// Name identifies the product. Unique across the inventory,
	// compared case-insensitively.
	Name string

	// Price is the cost basis. The customer-facing price is derived from it.
	Price decimal.Decimal

	// Quantity is the current stock on hand.
	Quantity int

	// Max is the capacity baseline used for stock tiers.
	// Set to Quantity whenever the product is created or edited;
	// restocking does not raise it.
	Max int

	// Category is the catalog section the product is listed under.
	Category Category
}

// SameName reports whether name refers to this product (case-insensitive).
func (p Product) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(name))
}

// ProductInput carries administrator input for create and edit.
// Price and Quantity stay as entered so validation can report bad numbers.
type ProductInput struct {
	Name     string
	Price    string
	Quantity string
	Category string
}

// ParseCount reads a stock count written in base ten. Integral decimals
// such as "5.0" are accepted; leading zeros do not change the base, and
// prefixed forms like "0x10" are rejected.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	if d.Abs().GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return int(d.IntPart()), nil
}
