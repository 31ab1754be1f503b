package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/models"
)

// ValidateProduct checks administrator input for both create and edit and
// returns the product it describes, with Max set to Quantity.
// others are the products the new name must not collide with; an edit
// passes every product except the one being edited.
func ValidateProduct(in models.ProductInput, others []models.Product) (models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Product{}, apperror.Validation(apperror.ReasonEmptyName, "name",
			"product name cannot be empty")
	}
	for _, p := range others {
		if p.SameName(name) {
			return models.Product{}, apperror.Validation(apperror.ReasonDuplicateName, "name",
				"a product named %q already exists", p.Name)
		}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || !price.IsPositive() {
		return models.Product{}, apperror.Validation(apperror.ReasonInvalidPrice, "price",
			"price must be a number greater than zero")
	}

	quantity, err := models.ParseCount(in.Quantity)
	if err != nil || quantity <= 0 {
		return models.Product{}, apperror.Validation(apperror.ReasonInvalidQuantity, "quantity",
			"quantity must be a whole number greater than zero")
	}

	category, ok := models.ParseCategory(in.Category)
	if !ok {
		return models.Product{}, apperror.Validation(apperror.ReasonInvalidCategory, "category",
			"unknown category %q", in.Category)
	}

	return models.Product{
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Max:      quantity,
		Category: category,
	}, nil
}

// Confirm asks the user to approve a destructive step.
// Returning false aborts the step without mutating anything.
type Confirm func(prompt string) bool

// Confirmed returns a Confirm that always answers ok.
func Confirmed(ok bool) Confirm {
	return func(string) bool { return ok }
}

func ask(confirm Confirm, prompt string) bool {
	return confirm != nil && confirm(prompt)
}
