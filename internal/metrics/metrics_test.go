package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Checkout(decimal.RequireFromString("22.00"), decimal.RequireFromString("2.00"))
	m.Checkout(decimal.RequireFromString("11.00"), decimal.RequireFromString("1.00"))
	m.Rejected("stock")
	m.Rejected("stock")
	m.Rejected("payment")
	m.SaveFailed("inventory")
	m.Inventory(7, 2)
	m.Request("GET", "/api/v1/catalog", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.checkouts))
	assert.InDelta(t, 33.0, testutil.ToFloat64(m.salesAmount), 1e-9)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m.profitAmount), 1e-9)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.rejections.WithLabelValues("stock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("payment")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.saveFailures.WithLabelValues("inventory")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.products))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.lowStock))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/catalog", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Checkout(decimal.NewFromInt(1), decimal.Zero)
		m.Rejected("stock")
		m.SaveFailed("ledger")
		m.Inventory(1, 1)
		m.Request("GET", "/", 200, time.Millisecond)
	})
}
