package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/models"
)

func TestLedgerService_SalesReport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(
		product("Chips", "10.00", 5, 5, models.CategorySnacks),
		product("Cola", "15.00", 4, 4, models.CategoryBeverages),
	)
	f.store.transactions = []models.Transaction{{
		Date:        models.Day(fixedNow),
		TotalSale:   dec("33.00"),
		TotalProfit: dec("3.00"),
		Tendered:    dec("40.00"),
		Change:      dec("7.00"),
	}}
	require.NoError(t, f.ledger.Load(ctx))

	_, err := f.cart.Add("Chips", 2)
	require.NoError(t, err)
	_, err = f.cart.Add("Cola", 1)
	require.NoError(t, err)
	_, err = f.checkout.Pay(ctx, dec("40"))
	require.NoError(t, err)

	report := f.ledger.SalesReport()
	require.Len(t, report.Sales, 2)
	assert.Equal(t, "Chips", report.Sales[0].Name)
	assert.True(t, report.Sales[0].Profit.Equal(dec("2.00")), report.Sales[0].Profit.String())
	assert.True(t, report.Sales[1].Profit.Equal(dec("1.50")), report.Sales[1].Profit.String())

	assert.Equal(t, 2, report.Totals.Transactions)
	assert.True(t, report.Totals.TotalSales.Equal(dec("71.50")), report.Totals.TotalSales.String())
	assert.True(t, report.Totals.TotalProfit.Equal(dec("6.50")), report.Totals.TotalProfit.String())
}

func TestLedgerService_ClearHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(product("Chips", "10.00", 5, 5, models.CategorySnacks))
	_, err := f.cart.Add("Chips", 1)
	require.NoError(t, err)
	_, err = f.checkout.Pay(ctx, dec("11"))
	require.NoError(t, err)

	err = f.ledger.ClearHistory(ctx, Confirmed(false))
	assert.ErrorIs(t, err, apperror.ErrConfirmationRequired)
	assert.Len(t, f.ledger.Transactions(), 1)

	require.NoError(t, f.ledger.ClearHistory(ctx, Confirmed(true)))
	assert.Empty(t, f.ledger.Transactions())
	assert.Empty(t, f.store.transactions)
	assert.Len(t, f.ledger.Sales(), 1)
}

func TestLedgerService_ClearHistory_SaveFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.store.failLedger = true

	err := f.ledger.ClearHistory(ctx, Confirmed(true))
	assert.ErrorIs(t, err, apperror.ErrSave)
}
