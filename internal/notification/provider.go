package notification

import "context"

// Provider defines the capability contract every delivery plugin satisfies.
// The host runtime depends only on this interface, never on a concrete
// provider type. Implementations must be safe for concurrent use.
type Provider interface {
	// Manifest returns static descriptive metadata, read at registration time.
	Manifest() Manifest

	// Schema accessors are pure and idempotent: they return the same
	// validation rules in every lifecycle state, including before Initialize.
	NotificationSchema() Schema
	RecipientSchema() Schema
	ContentSchema() Schema

	// RateLimitConfig resolves the token-bucket parameters the host's
	// rate-limiting engine throttles Send with. It is a pure function of the
	// stored configuration and never fails.
	RateLimitConfig() RateLimitConfig

	// Initialize stores the host-supplied configuration and transitions the
	// provider to the ready state. The host calls it exactly once, before
	// the first Send.
	Initialize(ctx context.Context, config *ProviderConfig) error

	// HealthCheck reports provider health. Callable in any lifecycle state
	// and free of side effects on provider state.
	HealthCheck(ctx context.Context) HealthStatus

	// Send delivers one notification and reports the outcome. Failures are
	// communicated through the result, not through a panic or error.
	Send(ctx context.Context, n *Notification) DeliveryResult

	// Shutdown transitions the provider to its terminal state. Safe to call
	// without prior initialization.
	Shutdown(ctx context.Context) error
}
