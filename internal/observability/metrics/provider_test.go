package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *ProviderMetrics {
	t.Helper()
	m, err := NewProviderMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	return m
}

func TestNewProviderMetricsRegistersOnce(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	_, err := NewProviderMetrics(registry)
	require.NoError(t, err)

	// Registering a second collector with the same descriptors must fail.
	_, err = NewProviderMetrics(registry)
	assert.Error(t, err)
}

func TestRecordDelivery(t *testing.T) {
	t.Parallel()

	m := newTestMetrics(t)
	m.RecordDelivery("mock", "success", 5*time.Millisecond)
	m.RecordDelivery("mock", "success", 2*time.Millisecond)
	m.RecordDelivery("mock", "error", time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.DeliveriesTotal.WithLabelValues("mock", "success")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DeliveriesTotal.WithLabelValues("mock", "error")), 0.001)
}

func TestRecordValidationFailure(t *testing.T) {
	t.Parallel()

	m := newTestMetrics(t)
	m.RecordValidationFailure("mock", "recipient.user_id")

	assert.InDelta(t, 1, testutil.ToFloat64(m.ValidationFailuresTotal.WithLabelValues("mock", "recipient.user_id")), 0.001)
}

func TestRecordHealthCheck(t *testing.T) {
	t.Parallel()

	m := newTestMetrics(t)
	m.RecordHealthCheck("mock", true)
	m.RecordHealthCheck("mock", true)
	m.RecordHealthCheck("mock", false)

	assert.InDelta(t, 2, testutil.ToFloat64(m.HealthChecksTotal.WithLabelValues("mock", "healthy")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HealthChecksTotal.WithLabelValues("mock", "unhealthy")), 0.001)
}

func TestRecordLifecycleTransition(t *testing.T) {
	t.Parallel()

	m := newTestMetrics(t)
	m.RecordLifecycleTransition("mock", "ready")
	m.RecordLifecycleTransition("mock", "shutdown")

	assert.InDelta(t, 1, testutil.ToFloat64(m.LifecycleTransitionsTotal.WithLabelValues("mock", "ready")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LifecycleTransitionsTotal.WithLabelValues("mock", "shutdown")), 0.001)
}
