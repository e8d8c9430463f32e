package observability

import (
	"strconv"
	"time"
)

// MetricsRegistry provides an interface for recording application metrics
// This replaces direct access to global Prometheus metrics with dependency injection
type MetricsRegistry interface {
	// HTTP Request metrics
	IncrementRequests(endpoint, method, status string)
	RecordRequestLatency(endpoint, method string, duration time.Duration)

	// Selection metrics
	IncrementSelections(method string)
	RecordSelectionScore(score float64)
	IncrementFallbacks()

	// Identity resolution metrics
	IncrementIdentityResolutions(method string)

	// Ad event tracking metrics
	IncrementAdEvents(eventType string)

	// RPC error metrics
	IncrementRPCErrors(code int)
}

// PrometheusRegistry implements MetricsRegistry using the global Prometheus metrics
type PrometheusRegistry struct{}

// NewPrometheusRegistry creates a new PrometheusRegistry
func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

// HTTP Request metrics
func (r *PrometheusRegistry) IncrementRequests(endpoint, method, status string) {
	RequestCount.WithLabelValues(endpoint, method, status).Inc()
}

func (r *PrometheusRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
	RequestLatency.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

// Selection metrics
func (r *PrometheusRegistry) IncrementSelections(method string) {
	SelectionCount.WithLabelValues(method).Inc()
}

func (r *PrometheusRegistry) RecordSelectionScore(score float64) {
	SelectionScore.Observe(score)
}

func (r *PrometheusRegistry) IncrementFallbacks() {
	FallbackCount.Inc()
}

// Identity resolution metrics
func (r *PrometheusRegistry) IncrementIdentityResolutions(method string) {
	IdentityResolutionCount.WithLabelValues(method).Inc()
}

// Ad event tracking metrics
func (r *PrometheusRegistry) IncrementAdEvents(eventType string) {
	AdEventCount.WithLabelValues(eventType).Inc()
}

// RPC error metrics
func (r *PrometheusRegistry) IncrementRPCErrors(code int) {
	RPCErrorCount.WithLabelValues(strconv.Itoa(code)).Inc()
}

// NoOpRegistry implements MetricsRegistry with no-op methods for testing
type NoOpRegistry struct{}

// NewNoOpRegistry creates a new NoOpRegistry
func NewNoOpRegistry() *NoOpRegistry {
	return &NoOpRegistry{}
}

// HTTP Request metrics
func (r *NoOpRegistry) IncrementRequests(endpoint, method, status string)                    {}
func (r *NoOpRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {}

// Selection metrics
func (r *NoOpRegistry) IncrementSelections(method string)  {}
func (r *NoOpRegistry) RecordSelectionScore(score float64) {}
func (r *NoOpRegistry) IncrementFallbacks()                {}

// Identity resolution metrics
func (r *NoOpRegistry) IncrementIdentityResolutions(method string) {}

// Ad event tracking metrics
func (r *NoOpRegistry) IncrementAdEvents(eventType string) {}

// RPC error metrics
func (r *NoOpRegistry) IncrementRPCErrors(code int) {}
