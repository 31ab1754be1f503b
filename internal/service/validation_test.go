package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/models"
)

func TestValidateProduct(t *testing.T) {
	existing := []models.Product{product("Chips", "10", 5, 5, models.CategorySnacks)}

	tests := []struct {
		name       string
		in         models.ProductInput
		wantReason apperror.Reason
	}{
		{"empty name", models.ProductInput{Name: "  ", Price: "1", Quantity: "1"}, apperror.ReasonEmptyName},
		{"duplicate name", models.ProductInput{Name: "chips", Price: "1", Quantity: "1"}, apperror.ReasonDuplicateName},
		{"zero price", models.ProductInput{Name: "Gum", Price: "0", Quantity: "1"}, apperror.ReasonInvalidPrice},
		{"negative price", models.ProductInput{Name: "Gum", Price: "-2", Quantity: "1"}, apperror.ReasonInvalidPrice},
		{"non-numeric price", models.ProductInput{Name: "Gum", Price: "cheap", Quantity: "1"}, apperror.ReasonInvalidPrice},
		{"zero quantity", models.ProductInput{Name: "Gum", Price: "1", Quantity: "0"}, apperror.ReasonInvalidQuantity},
		{"fractional quantity", models.ProductInput{Name: "Gum", Price: "1", Quantity: "1.5"}, apperror.ReasonInvalidQuantity},
		{"hex quantity", models.ProductInput{Name: "Gum", Price: "1", Quantity: "0x10"}, apperror.ReasonInvalidQuantity},
		{"binary quantity", models.ProductInput{Name: "Gum", Price: "1", Quantity: "0b11"}, apperror.ReasonInvalidQuantity},
		{"missing quantity", models.ProductInput{Name: "Gum", Price: "1"}, apperror.ReasonInvalidQuantity},
		{"unknown category", models.ProductInput{Name: "Gum", Price: "1", Quantity: "1", Category: "Toys"}, apperror.ReasonInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateProduct(tt.in, existing)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			reason, ok := apperror.ReasonOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestValidateProduct_Valid(t *testing.T) {
	p, err := ValidateProduct(models.ProductInput{
		Name:     "  Gum ",
		Price:    "1.25",
		Quantity: "40",
		Category: "beverages",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Gum", p.Name)
	assert.True(t, p.Price.Equal(dec("1.25")))
	assert.Equal(t, 40, p.Quantity)
	assert.Equal(t, 40, p.Max)
	assert.Equal(t, models.CategoryBeverages, p.Category)
}

func TestValidateProduct_DefaultCategory(t *testing.T) {
	p, err := ValidateProduct(models.ProductInput{Name: "Gum", Price: "1", Quantity: "1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, p.Category)
}

func TestValidateProduct_QuantityIsBaseTen(t *testing.T) {
	tests := []struct {
		quantity string
		want     int
	}{
		{"10", 10},
		{"010", 10},
		{"0008", 8},
		{" 7 ", 7},
		{"5.0", 5},
	}

	for _, tt := range tests {
		t.Run(tt.quantity, func(t *testing.T) {
			p, err := ValidateProduct(models.ProductInput{Name: "Gum", Price: "1", Quantity: tt.quantity}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Quantity)
			assert.Equal(t, tt.want, p.Max)
		})
	}
}
