package csvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/models"
)

type transactionRow struct {
	Date        string `csv:"date"`
	TotalSale   string `csv:"total_sale"`
	TotalProfit string `csv:"total_profit"`
	Tendered    string `csv:"tendered"`
	Change      string `csv:"change"`
}

// LoadTransactions reads the ledger file.
func (s *Store) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var rows []*transactionRow
	found, err := readRows(s.transactionsPath, &rows)
	if err != nil {
		return []models.Transaction{}, apperror.Load(err, "failed to load transactions")
	}
	if !found {
		return []models.Transaction{}, nil
	}

	txns := make([]models.Transaction, 0, len(rows))
	var rowErrs []error
	for i, row := range rows {
		txn, err := parseTransactionRow(row)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("line %d: %w", i+2, err))
			continue
		}
		txns = append(txns, txn)
	}

	if len(rowErrs) > 0 {
		return txns, apperror.Load(errors.Join(rowErrs...),
			"skipped %d malformed transaction rows", len(rowErrs))
	}
	return txns, nil
}

// SaveTransactions rewrites the ledger file.
func (s *Store) SaveTransactions(ctx context.Context, txns []models.Transaction) error {
	rows := make([]*transactionRow, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, &transactionRow{
			Date:        t.Date.Format(models.DateLayout),
			TotalSale:   t.TotalSale.StringFixed(2),
			TotalProfit: t.TotalProfit.StringFixed(2),
			Tendered:    t.Tendered.StringFixed(2),
			Change:      t.Change.StringFixed(2),
		})
	}
	if err := writeRows(s.transactionsPath, rows); err != nil {
		return apperror.Save(err, "failed to save transactions")
	}
	return nil
}

func parseTransactionRow(row *transactionRow) (models.Transaction, error) {
	date, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(row.Date), time.Local)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid date %q", row.Date)
	}

	amounts := make([]decimal.Decimal, 4)
	for i, field := range []struct{ name, value string }{
		{"total_sale", row.TotalSale},
		{"total_profit", row.TotalProfit},
		{"tendered", row.Tendered},
		{"change", row.Change},
	} {
		v, err := decimal.NewFromString(strings.TrimSpace(field.value))
		if err != nil {
			return models.Transaction{}, fmt.Errorf("invalid %s %q", field.name, field.value)
		}
		amounts[i] = v
	}

	return models.Transaction{
		Date:        date,
		TotalSale:   amounts[0],
		TotalProfit: amounts[1],
		Tendered:    amounts[2],
		Change:      amounts[3],
	}, nil
}
