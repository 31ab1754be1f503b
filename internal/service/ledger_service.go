package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/calculator"
	"github.com/mmynk/clevermart/internal/metrics"
	"github.com/mmynk/clevermart/internal/models"
	"github.com/mmynk/clevermart/internal/storage"
)

// LedgerService keeps the persisted transaction ledger and the in-memory
// per-line sales history.
type LedgerService struct {
	store        storage.LedgerStore
	metrics      *metrics.Metrics
	transactions []models.Transaction
	sales        []models.SalesRecord
}

// NewLedgerService creates an empty LedgerService backed by store.
func NewLedgerService(store storage.LedgerStore, m *metrics.Metrics) *LedgerService {
	return &LedgerService{store: store, metrics: m}
}

// Load replaces the in-memory ledger with the persisted one.
func (s *LedgerService) Load(ctx context.Context) error {
	txns, err := s.store.LoadTransactions(ctx)
	s.transactions = txns
	if err != nil {
		slog.Error("Failed to load transactions", "error", err, "loaded", len(txns))
		return err
	}
	slog.Info("Transactions loaded", "transactions", len(txns))
	return nil
}

// Save writes the whole ledger.
func (s *LedgerService) Save(ctx context.Context) error {
	if err := s.store.SaveTransactions(ctx, s.transactions); err != nil {
		slog.Error("Failed to save transactions", "error", err)
		s.metrics.SaveFailed("transactions")
		return err
	}
	return nil
}

// Record appends the sales lines and the transaction of one checkout, then
// saves the ledger. The records stay in memory even if the save fails.
func (s *LedgerService) Record(ctx context.Context, sales []models.SalesRecord, txn models.Transaction) error {
	s.sales = append(s.sales, sales...)
	s.transactions = append(s.transactions, txn)
	return s.Save(ctx)
}

// Transactions returns a copy of the ledger, oldest first.
func (s *LedgerService) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Sales returns a copy of the sales history recorded since start-up.
func (s *LedgerService) Sales() []models.SalesRecord {
	out := make([]models.SalesRecord, len(s.sales))
	copy(out, s.sales)
	return out
}

// SalesReport computes per-line profit for this session's sales and totals
// over the whole ledger.
func (s *LedgerService) SalesReport() SalesReport {
	sales := make([]calculator.Sale, len(s.sales))
	for i, r := range s.sales {
		sales[i] = calculator.Sale{
			Name:         r.Name,
			Quantity:     r.Quantity,
			Cost:         r.Cost,
			SellingPrice: r.SellingPrice,
		}
	}
	entries := make([]calculator.LedgerEntry, len(s.transactions))
	for i, t := range s.transactions {
		entries[i] = calculator.LedgerEntry{TotalSale: t.TotalSale, TotalProfit: t.TotalProfit}
	}
	return SalesReport{
		Sales:  calculator.SaleProfits(sales),
		Totals: calculator.SumLedger(entries),
	}
}

// ClearHistory empties the ledger once confirm approves it and saves.
// The in-memory sales history is left alone.
func (s *LedgerService) ClearHistory(ctx context.Context, confirm Confirm) error {
	prompt := "Are you sure you want to clear the purchase history?"
	if !ask(confirm, prompt) {
		return apperror.ConfirmationRequired("%s", prompt)
	}
	cleared := len(s.transactions)
	s.transactions = []models.Transaction{}
	slog.Info("Purchase history cleared", "transactions", cleared)
	if err := s.Save(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
