package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/models"
)

// LoadTransactions returns the ledger, oldest first.
func (s *SQLiteStore) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT date, total_sale, total_profit, tendered, change FROM transactions ORDER BY id",
	)
	if err != nil {
		return []models.Transaction{}, apperror.Load(err, "failed to query transactions")
	}
	defer rows.Close()

	txns := []models.Transaction{}
	var rowErrs []error
	for rows.Next() {
		var date, sale, profit, tendered, change string
		if err := rows.Scan(&date, &sale, &profit, &tendered, &change); err != nil {
			return txns, apperror.Load(err, "failed to scan transaction")
		}
		txn, err := parseTransaction(date, sale, profit, tendered, change)
		if err != nil {
			rowErrs = append(rowErrs, err)
			continue
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return txns, apperror.Load(err, "failed to iterate transactions")
	}

	if len(rowErrs) > 0 {
		return txns, apperror.Load(errors.Join(rowErrs...),
			"skipped %d malformed transaction rows", len(rowErrs))
	}
	return txns, nil
}

// SaveTransactions replaces the transactions table.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, txns []models.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Save(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return apperror.Save(err, "failed to clear transactions")
	}

	for _, t := range txns {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO transactions (date, total_sale, total_profit, tendered, change) VALUES (?, ?, ?, ?, ?)",
			t.Date.Format(models.DateLayout),
			t.TotalSale.StringFixed(2),
			t.TotalProfit.StringFixed(2),
			t.Tendered.StringFixed(2),
			t.Change.StringFixed(2),
		)
		if err != nil {
			return apperror.Save(err, "failed to insert transaction")
		}
	}

	if err := tx.Commit(); err != nil {
		return apperror.Save(err, "failed to commit transactions")
	}
	return nil
}

func parseTransaction(date, sale, profit, tendered, change string) (models.Transaction, error) {
	d, err := time.ParseInLocation(models.DateLayout, date, time.Local)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid date %q", date)
	}
	amounts := make([]decimal.Decimal, 0, 4)
	for _, v := range []string{sale, profit, tendered, change} {
		a, err := decimal.NewFromString(v)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("invalid amount %q", v)
		}
		amounts = append(amounts, a)
	}
	return models.Transaction{
		Date:        d,
		TotalSale:   amounts[0],
		TotalProfit: amounts[1],
		Tendered:    amounts[2],
		Change:      amounts[3],
	}, nil
}
