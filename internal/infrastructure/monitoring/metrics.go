package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for the HTTP pipeline.
//
// Each Metrics value owns a private registry so servers can be constructed
// repeatedly (tests, embedded use) without duplicate registration panics.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts requests by method, path, and status.
	RequestsTotal *prometheus.CounterVec

	// RequestLatency tracks request latency by method, path, and status.
	RequestLatency *prometheus.HistogramVec
}

// NewMetrics creates a new metrics collector with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_latency_seconds",
				Help:    "Latency per HTTP request",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
}

// RecordHTTPRequest records one completed request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestLatency.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// Handler returns the Prometheus text exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
