package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/models"
)

// LoadProducts returns every product in insertion order.
func (s *SQLiteStore) LoadProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, price, quantity, max, category FROM products ORDER BY position",
	)
	if err != nil {
		return []models.Product{}, apperror.Load(err, "failed to query products")
	}
	defer rows.Close()

	products := []models.Product{}
	var rowErrs []error
	for rows.Next() {
		var (
			p               models.Product
			price, category string
		)
		if err := rows.Scan(&p.Name, &price, &p.Quantity, &p.Max, &category); err != nil {
			return products, apperror.Load(err, "failed to scan product")
		}
		p.Price, err = decimal.NewFromString(price)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("%s: invalid price %q", p.Name, price))
			continue
		}
		p.Category, _ = models.ParseCategory(category)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return products, apperror.Load(err, "failed to iterate products")
	}

	if len(rowErrs) > 0 {
		return products, apperror.Load(errors.Join(rowErrs...),
			"skipped %d malformed product rows", len(rowErrs))
	}
	return products, nil
}

// SaveProducts replaces the products table.
func (s *SQLiteStore) SaveProducts(ctx context.Context, products []models.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Save(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return apperror.Save(err, "failed to clear products")
	}

	for i, p := range products {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO products (position, name, price, quantity, max, category) VALUES (?, ?, ?, ?, ?, ?)",
			i, p.Name, p.Price.String(), p.Quantity, p.Max, string(p.Category),
		)
		if err != nil {
			return apperror.Save(err, "failed to insert product %s", p.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperror.Save(err, "failed to commit products")
	}
	return nil
}
