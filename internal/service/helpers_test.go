package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/models"
	"github.com/mmynk/clevermart/internal/storage"
)

// memStore is an in-memory storage.Store that can be told to fail saves.
type memStore struct {
	products     []models.Product
	transactions []models.Transaction

	loadProductsErr error
	failProducts    bool
	failLedger      bool

	productSaves int
	ledgerSaves  int
}

var _ storage.Store = (*memStore)(nil)

func (m *memStore) LoadProducts(_ context.Context) ([]models.Product, error) {
	out := append([]models.Product{}, m.products...)
	return out, m.loadProductsErr
}

func (m *memStore) SaveProducts(_ context.Context, products []models.Product) error {
	if m.failProducts {
		return apperror.Save(nil, "disk full")
	}
	m.productSaves++
	m.products = append([]models.Product{}, products...)
	return nil
}

func (m *memStore) LoadTransactions(_ context.Context) ([]models.Transaction, error) {
	return append([]models.Transaction{}, m.transactions...), nil
}

func (m *memStore) SaveTransactions(_ context.Context, txns []models.Transaction) error {
	if m.failLedger {
		return apperror.Save(nil, "disk full")
	}
	m.ledgerSaves++
	m.transactions = append([]models.Transaction{}, txns...)
	return nil
}

func (m *memStore) Close() error { return nil }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func product(name, price string, qty, max int, category models.Category) models.Product {
	return models.Product{Name: name, Price: dec(price), Quantity: qty, Max: max, Category: category}
}

type fixture struct {
	store     *memStore
	inventory *InventoryService
	cart      *CartService
	ledger    *LedgerService
	checkout  *CheckoutService
}

var fixedNow = time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

func newFixture(products ...models.Product) *fixture {
	store := &memStore{products: products}
	inventory := NewInventoryService(store, nil)
	if err := inventory.Load(context.Background()); err != nil {
		panic(err)
	}
	cart := NewCartService(inventory, nil)
	ledger := NewLedgerService(store, nil)
	checkout := NewCheckoutService(inventory, cart, ledger, nil).
		WithClock(func() time.Time { return fixedNow })
	return &fixture{
		store:     store,
		inventory: inventory,
		cart:      cart,
		ledger:    ledger,
		checkout:  checkout,
	}
}
