package csvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/models"
)

// productRow is the on-disk shape of a product. Fields stay strings so each
// row can be validated individually instead of failing the whole decode.
type productRow struct {
	Name     string `csv:"name"`
	Price    string `csv:"price"`
	Quantity string `csv:"quantity"`
	Max      string `csv:"max"`
	Category string `csv:"category"`
}

// LoadProducts reads the inventory file.
func (s *Store) LoadProducts(ctx context.Context) ([]models.Product, error) {
	var rows []*productRow
	found, err := readRows(s.inventoryPath, &rows)
	if err != nil {
		return []models.Product{}, apperror.Load(err, "failed to load inventory")
	}
	if !found {
		return []models.Product{}, nil
	}

	products := make([]models.Product, 0, len(rows))
	var rowErrs []error
	for i, row := range rows {
		p, err := parseProductRow(row)
		if err != nil {
			// i+2: one for the header, one for 1-based line numbers
			rowErrs = append(rowErrs, fmt.Errorf("line %d: %w", i+2, err))
			continue
		}
		products = append(products, p)
	}

	if len(rowErrs) > 0 {
		return products, apperror.Load(errors.Join(rowErrs...),
			"skipped %d malformed inventory rows", len(rowErrs))
	}
	return products, nil
}

// SaveProducts rewrites the inventory file.
func (s *Store) SaveProducts(ctx context.Context, products []models.Product) error {
	rows := make([]*productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, &productRow{
			Name:     p.Name,
			Price:    p.Price.String(),
			Quantity: cast.ToString(p.Quantity),
			Max:      cast.ToString(p.Max),
			Category: string(p.Category),
		})
	}
	if err := writeRows(s.inventoryPath, rows); err != nil {
		return apperror.Save(err, "failed to save inventory")
	}
	return nil
}

func parseProductRow(row *productRow) (models.Product, error) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return models.Product{}, errors.New("missing name")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: invalid price %q", name, row.Price)
	}

	quantity, err := models.ParseCount(row.Quantity)
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: invalid quantity %q", name, row.Quantity)
	}

	max, err := models.ParseCount(row.Max)
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: invalid max %q", name, row.Max)
	}

	if quantity < 0 || max < 0 {
		return models.Product{}, fmt.Errorf("%s: negative stock", name)
	}

	// Unknown categories are kept as-is; only blanks get the default.
	category, _ := models.ParseCategory(row.Category)

	return models.Product{
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Max:      max,
		Category: category,
	}, nil
}
