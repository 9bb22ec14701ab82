// Package metrics provides custom Prometheus metrics for provider operations.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ProviderMetrics contains all Prometheus metrics related to provider
// lifecycle, validation and delivery operations.
type ProviderMetrics struct {
	// Delivery metrics
	DeliveriesTotal  *prometheus.CounterVec   // Total deliveries by channel and status
	DeliveryDuration *prometheus.HistogramVec // Latency by channel

	// Validation metrics
	ValidationFailuresTotal *prometheus.CounterVec // Rejected payloads by channel and field

	// Lifecycle metrics
	LifecycleTransitionsTotal *prometheus.CounterVec // Transitions by channel and target state
	HealthChecksTotal         *prometheus.CounterVec // Health checks by channel and result

	registry *prometheus.Registry
}

// NewProviderMetrics creates a new instance of ProviderMetrics.
// It requires a Prometheus registry to register the metrics.
// It returns an error if metric registration fails.
func NewProviderMetrics(registry *prometheus.Registry) (*ProviderMetrics, error) {
	m := &ProviderMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register provider metrics: %w", err)
	}
	return m, nil
}

// initMetrics initializes all metrics for ProviderMetrics.
func (m *ProviderMetrics) initMetrics() {
	m.DeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_deliveries_total",
			Help: "Total number of delivery attempts by channel and status",
		},
		[]string{"channel", "status"}, // status: success, error
	)

	m.DeliveryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_delivery_duration_seconds",
			Help:    "Time taken for delivery by channel",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"channel"},
	)

	m.ValidationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_validation_failures_total",
			Help: "Total number of schema validation failures by channel and field",
		},
		[]string{"channel", "field"},
	)

	m.LifecycleTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_lifecycle_transitions_total",
			Help: "Total number of provider lifecycle transitions by channel and target state",
		},
		[]string{"channel", "state"},
	)

	m.HealthChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_health_checks_total",
			Help: "Total number of provider health checks by channel and result",
		},
		[]string{"channel", "result"}, // result: healthy, unhealthy
	)
}

// RecordDelivery records a delivery attempt.
func (m *ProviderMetrics) RecordDelivery(channel, status string, duration time.Duration) {
	m.DeliveriesTotal.WithLabelValues(channel, status).Inc()
	m.DeliveryDuration.WithLabelValues(channel).Observe(duration.Seconds())
}

// RecordValidationFailure records a rejected payload. The field label carries
// the first violating field so dashboards can spot recurring shape mismatches.
func (m *ProviderMetrics) RecordValidationFailure(channel, field string) {
	m.ValidationFailuresTotal.WithLabelValues(channel, field).Inc()
}

// RecordLifecycleTransition records a transition into the given state.
func (m *ProviderMetrics) RecordLifecycleTransition(channel, state string) {
	m.LifecycleTransitionsTotal.WithLabelValues(channel, state).Inc()
}

// RecordHealthCheck records a health check result.
func (m *ProviderMetrics) RecordHealthCheck(channel string, healthy bool) {
	result := "healthy"
	if !healthy {
		result = "unhealthy"
	}
	m.HealthChecksTotal.WithLabelValues(channel, result).Inc()
}

// Collect implements the prometheus.Collector interface.
func (m *ProviderMetrics) Collect(ch chan<- prometheus.Metric) {
	m.DeliveriesTotal.Collect(ch)
	m.DeliveryDuration.Collect(ch)
	m.ValidationFailuresTotal.Collect(ch)
	m.LifecycleTransitionsTotal.Collect(ch)
	m.HealthChecksTotal.Collect(ch)
}

// Describe implements the prometheus.Collector interface.
func (m *ProviderMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.DeliveriesTotal.Describe(ch)
	m.DeliveryDuration.Describe(ch)
	m.ValidationFailuresTotal.Describe(ch)
	m.LifecycleTransitionsTotal.Describe(ch)
	m.HealthChecksTotal.Describe(ch)
}
