// Package metrics exposes Prometheus instruments for the HTTP surface.
package metrics

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Metrics holds the application-level instruments.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	loginsTotal     *prometheus.CounterVec
	mutationsTotal  *prometheus.CounterVec
}

// New configures the registry and instruments.
func New() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paperledger_http_requests_total",
		Help: "HTTP requests handled, by route, method and status.",
	}, []string{"route", "method", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paperledger_http_request_duration_seconds",
		Help:    "HTTP request latency, by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	loginsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paperledger_logins_total",
		Help: "Login attempts, by outcome.",
	}, []string{"outcome"})

	mutationsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "paperledger_invoice_mutations_total",
		Help: "Invoice mutations, by action and outcome.",
	}, []string{"action", "outcome"})

	for _, c := range []prometheus.Collector{
		requestsTotal,
		requestDuration,
		loginsTotal,
		mutationsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return &Metrics{
		registry:        registry,
		requestsTotal:   requestsTotal,
		requestDuration: requestDuration,
		loginsTotal:     loginsTotal,
		mutationsTotal:  mutationsTotal,
	}, nil
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// GinMiddleware records per-request counters and latency.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		if isMetric(route) {
			return
		}

		method := c.Request.Method
		status := statusClass(c.Writer.Status())
		m.requestsTotal.WithLabelValues(route, method, status).Inc()
		m.requestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

// RecordLogin increments login attempt counts.
func (m *Metrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.loginsTotal.WithLabelValues(strings.TrimSpace(outcome)).Inc()
}

// RecordInvoiceMutation increments invoice mutation counts.
func (m *Metrics) RecordInvoiceMutation(action, outcome string) {
	if m == nil {
		return
	}
	m.mutationsTotal.WithLabelValues(strings.TrimSpace(action), strings.TrimSpace(outcome)).Inc()
}

func isMetric(route string) bool {
	return strings.EqualFold(strings.TrimSpace(route), "/metrics")
}

// statusClass buckets status codes to keep label cardinality low.
func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Module wires the metrics instruments for the application.
var Module = fx.Module("metrics",
	fx.Provide(New),
)
