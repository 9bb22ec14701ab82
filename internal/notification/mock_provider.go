package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/relaykit/mock-provider/internal/observability/metrics"
)

// Provider manifest constants.
const (
	providerName    = "mock-provider"
	providerVersion = "1.0.0"
)

// Option customises the mock provider.
type Option func(*MockProvider)

// WithLogger sets the logger used for observability records.
func WithLogger(log *slog.Logger) Option {
	return func(p *MockProvider) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMetrics attaches Prometheus metrics to the provider.
func WithMetrics(m *metrics.ProviderMetrics) Option {
	return func(p *MockProvider) {
		p.metrics = m
	}
}

// WithClock overrides the clock used to timestamp results (useful for tests).
func WithClock(now func() time.Time) Option {
	return func(p *MockProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// MockProvider is the reference implementation of the Provider contract.
// It performs no real delivery: Send records the attempt and reports
// success, so host loaders, validation pipelines and rate-limit plumbing
// can be exercised deterministically.
//
// The lifecycle is deliberately permissive: Send and RateLimitConfig before
// Initialize are not rejected, they fall back to default configuration.
type MockProvider struct {
	manifest Manifest
	log      *slog.Logger
	metrics  *metrics.ProviderMetrics
	now      func() time.Time

	mu     sync.RWMutex
	state  State
	config *ProviderConfig
}

// NewMockProvider constructs a mock provider in the uninitialized state.
func NewMockProvider(opts ...Option) *MockProvider {
	p := &MockProvider{
		manifest: Manifest{
			Name:        providerName,
			Version:     providerVersion,
			Channel:     ChannelMock,
			DisplayName: "Mock Provider",
			Description: "Reference provider that simulates delivery without external calls",
			Author:      "Relaykit",
			Homepage:    "https://github.com/relaykit/mock-provider",
			Credentials: []string{"api_key"},
		},
		now:   time.Now,
		state: StateUninitialized,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	// Open the package log file only when no logger was injected, so
	// embedding hosts and tests never touch the filesystem.
	if p.log == nil {
		p.log = getFileLogger(false)
	}
	return p
}

// Manifest returns the static provider metadata.
func (p *MockProvider) Manifest() Manifest { return p.manifest }

// NotificationSchema returns the notification payload validator. When
// metrics are attached, every rejected payload is counted per violating
// field.
func (p *MockProvider) NotificationSchema() Schema { return p.observed(NotificationSchema()) }

// RecipientSchema returns the recipient payload validator.
func (p *MockProvider) RecipientSchema() Schema { return p.observed(RecipientSchema()) }

// ContentSchema returns the content payload validator.
func (p *MockProvider) ContentSchema() Schema { return p.observed(ContentSchema()) }

// observed attaches the provider's validation-failure metric to the schema.
func (p *MockProvider) observed(s Schema) Schema {
	if p.metrics == nil {
		return s
	}
	m, channel := p.metrics, p.manifest.Channel
	s.observe = func(field string) { m.RecordValidationFailure(channel, field) }
	return s
}

// State returns the current lifecycle state.
func (p *MockProvider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// RateLimitConfig resolves the token-bucket parameters from the stored
// configuration. Before Initialize it behaves as if the options were empty,
// so it always yields a fully populated config.
func (p *MockProvider) RateLimitConfig() RateLimitConfig {
	p.mu.RLock()
	config := p.config
	p.mu.RUnlock()

	if config == nil {
		return ResolveRateLimit(nil)
	}
	return ResolveRateLimit(config.Options)
}

// Initialize stores the configuration verbatim and transitions to ready.
// The configuration shape is not validated; any envelope the host supplies
// is accepted as-is.
func (p *MockProvider) Initialize(ctx context.Context, config *ProviderConfig) error {
	p.mu.Lock()
	p.config = config
	p.state = StateReady
	p.mu.Unlock()

	id := ""
	if config != nil {
		id = config.ID
	}
	p.log.Info("provider initialized", "channel", p.manifest.Channel, "config_id", id)
	if p.metrics != nil {
		p.metrics.RecordLifecycleTransition(p.manifest.Channel, string(StateReady))
	}
	return nil
}

// HealthCheck always reports healthy: the mock provider has no real
// dependency to probe. Callable in any lifecycle state.
func (p *MockProvider) HealthCheck(ctx context.Context) HealthStatus {
	if p.metrics != nil {
		p.metrics.RecordHealthCheck(p.manifest.Channel, true)
	}
	return HealthStatus{
		Healthy:   true,
		Message:   "mock provider operational",
		CheckedAt: p.now(),
	}
}

// Send simulates a delivery. It always reports success unless an unexpected
// internal fault occurs, which is recovered and converted into a failed
// result rather than propagated.
func (p *MockProvider) Send(ctx context.Context, n *Notification) (result DeliveryResult) {
	start := p.now()

	defer func() {
		if r := recover(); r != nil {
			result = DeliveryResult{
				Success:   false,
				Timestamp: p.now(),
				Error:     fmt.Sprintf("internal fault: %v", r),
			}
			p.log.Error("delivery failed", "channel", p.manifest.Channel, "error", result.Error)
			if p.metrics != nil {
				p.metrics.RecordDelivery(p.manifest.Channel, "error", p.now().Sub(start))
			}
		}
	}()

	p.log.Info("delivery simulated",
		"channel", p.manifest.Channel,
		"notification_id", n.NotificationID,
		"request_id", n.RequestID.String(),
		"user_id", n.Recipient.UserID,
		"retry_count", n.RetryCount)

	if p.metrics != nil {
		p.metrics.RecordDelivery(p.manifest.Channel, "success", p.now().Sub(start))
	}

	return DeliveryResult{
		Success:        true,
		NotificationID: n.NotificationID,
		Timestamp:      p.now(),
	}
}

// Shutdown transitions to the terminal state. Safe to call without prior
// initialization and holds no real resources to release.
func (p *MockProvider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.state = StateShutdown
	p.mu.Unlock()

	p.log.Info("provider shut down", "channel", p.manifest.Channel)
	if p.metrics != nil {
		p.metrics.RecordLifecycleTransition(p.manifest.Channel, string(StateShutdown))
	}
	return nil
}
