// Package metrics exposes store activity as Prometheus collectors.
// A nil *Metrics is valid and records nothing, so services and tests can
// run without a registry.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "clevermart"

// Metrics holds every collector the application updates.
type Metrics struct {
	checkouts       prometheus.Counter
	salesAmount     prometheus.Counter
	profitAmount    prometheus.Counter
	rejections      *prometheus.CounterVec
	saveFailures    *prometheus.CounterVec
	products        prometheus.Gauge
	lowStock        prometheus.Gauge
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checkouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Completed checkouts.",
		}),
		salesAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_amount_total",
			Help:      "Sum of charged totals across checkouts.",
		}),
		profitAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profit_amount_total",
			Help:      "Sum of markup profit across checkouts.",
		}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Operations rejected, by kind.",
		}, []string{"kind"}),
		saveFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "save_failures_total",
			Help:      "Failed writes of a persisted collection.",
		}, []string{"collection"}),
		products: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "products",
			Help:      "Products currently in inventory.",
		}),
		lowStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "products_low_stock",
			Help:      "Products in the low stock tier.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.checkouts,
		m.salesAmount,
		m.profitAmount,
		m.rejections,
		m.saveFailures,
		m.products,
		m.lowStock,
		m.requests,
		m.requestDuration,
	)
	return m
}

// Checkout records one completed checkout.
func (m *Metrics) Checkout(total, profit decimal.Decimal) {
	if m == nil {
		return
	}
	m.checkouts.Inc()
	m.salesAmount.Add(total.InexactFloat64())
	m.profitAmount.Add(profit.InexactFloat64())
}

// Rejected counts an operation refused with the given error kind.
func (m *Metrics) Rejected(kind string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(kind).Inc()
}

// SaveFailed counts a failed write of collection.
func (m *Metrics) SaveFailed(collection string) {
	if m == nil {
		return
	}
	m.saveFailures.WithLabelValues(collection).Inc()
}

// Inventory publishes the current product and low-stock counts.
func (m *Metrics) Inventory(products, low int) {
	if m == nil {
		return
	}
	m.products.Set(float64(products))
	m.lowStock.Set(float64(low))
}

// Request records one served HTTP request.
func (m *Metrics) Request(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
