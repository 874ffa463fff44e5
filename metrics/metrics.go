// Package metrics provides Prometheus metrics for the Wikipedia MCP server.
// It tracks tool calls, Wikipedia API traffic, and lazy-field cache behavior.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "wikipedia_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// APIRequestsTotal counts Wikipedia API requests by query operation and outcome
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total Wikipedia API requests by operation and status",
	}, []string{"operation", "status"})

	// APIRequestDuration measures Wikipedia API call latency by operation
	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Wikipedia API call latency by operation",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	// FieldLoads counts lazy page field accesses by field and source
	FieldLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "field_loads_total",
		Help:      "Lazy page field accesses by field and whether the slot was already filled",
	}, []string{"field", "source"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPIRequest records a Wikipedia API call
func RecordAPIRequest(operation, status string, duration float64) {
	APIRequestsTotal.WithLabelValues(operation, status).Inc()
	APIRequestDuration.WithLabelValues(operation).Observe(duration)
}

// RecordFieldAccess records a lazy field access as a cache hit or a fetch
func RecordFieldAccess(field string, cached bool) {
	source := "fetch"
	if cached {
		source = "cache"
	}
	FieldLoads.WithLabelValues(field, source).Inc()
}
