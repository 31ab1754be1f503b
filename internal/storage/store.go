// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/clevermart/internal/models"
)

// InventoryStore persists the product list.
// Both methods operate on the whole collection: there is no incremental
// update, every save is a full rewrite.
type InventoryStore interface {
	// LoadProducts returns every persisted product.
	// A store that has never been written yields an empty slice and no error.
	// Malformed records are skipped; the well-formed ones are returned
	// alongside an apperror.ErrLoad error describing the rest.
	LoadProducts(ctx context.Context) ([]models.Product, error)

	// SaveProducts replaces the persisted products with products.
	// Failures are reported as apperror.ErrSave.
	SaveProducts(ctx context.Context, products []models.Product) error
}

// LedgerStore persists completed checkout transactions.
type LedgerStore interface {
	// LoadTransactions returns the persisted ledger, oldest first.
	// Same empty/partial semantics as LoadProducts.
	LoadTransactions(ctx context.Context) ([]models.Transaction, error)

	// SaveTransactions replaces the persisted ledger with txns.
	SaveTransactions(ctx context.Context, txns []models.Transaction) error
}

// Store bundles both collections behind one backend.
// This abstraction allows swapping storage backends (CSV files, SQLite)
// without changing the service layer.
type Store interface {
	InventoryStore
	LedgerStore

	// Close releases any resources held by the store.
	Close() error
}
