package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CouponValidations   *prometheus.CounterVec
	CouponRedemptions   *prometheus.CounterVec
	ShippingQuotes      *prometheus.CounterVec
	PurchaseOrders      *prometheus.CounterVec
	PurchaseOrderAmount prometheus.Counter
}

// Config holds metrics configuration
type Config struct {
	Namespace string
}

// New creates and registers all collectors
func New(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	m.CouponValidations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "coupon_validations_total",
			Help:      "Coupon validations by outcome reason",
		},
		[]string{"reason"},
	)

	m.CouponRedemptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "coupon_redemptions_total",
			Help:      "Coupon redemption attempts by outcome reason",
		},
		[]string{"reason"},
	)

	m.ShippingQuotes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "shipping_quotes_total",
			Help:      "Shipping fee quotes by resolved method and free-shipping outcome",
		},
		[]string{"method", "free"},
	)

	m.PurchaseOrders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "purchase_orders_total",
			Help:      "Purchase order creation attempts by result",
		},
		[]string{"result"},
	)

	m.PurchaseOrderAmount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "purchase_order_amount_total",
			Help:      "Sum of committed purchase order totals",
		},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CouponValidations,
		m.CouponRedemptions,
		m.ShippingQuotes,
		m.PurchaseOrders,
		m.PurchaseOrderAmount,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one finished request
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// CouponValidated counts a validation outcome. Success is reported as "valid".
func (m *Metrics) CouponValidated(reason string) {
	if m == nil {
		return
	}
	m.CouponValidations.WithLabelValues(reasonLabel(reason)).Inc()
}

// CouponRedeemed counts a redemption outcome
func (m *Metrics) CouponRedeemed(reason string) {
	if m == nil {
		return
	}
	m.CouponRedemptions.WithLabelValues(reasonLabel(reason)).Inc()
}

// ShippingQuoted counts a fee quote
func (m *Metrics) ShippingQuoted(method string, free bool) {
	if m == nil {
		return
	}
	m.ShippingQuotes.WithLabelValues(method, strconv.FormatBool(free)).Inc()
}

// PurchaseOrderCreated counts a committed purchase order and its total
func (m *Metrics) PurchaseOrderCreated(total float64) {
	if m == nil {
		return
	}
	m.PurchaseOrders.WithLabelValues("created").Inc()
	m.PurchaseOrderAmount.Add(total)
}

// PurchaseOrderFailed counts a rolled back or rejected purchase order
func (m *Metrics) PurchaseOrderFailed(result string) {
	if m == nil {
		return
	}
	m.PurchaseOrders.WithLabelValues(result).Inc()
}

func reasonLabel(reason string) string {
	if reason == "" {
		return "valid"
	}
	return reason
}
