// Package notification implements the provider capability contract for the
// mock delivery channel: payload schemas, rate-limit configuration
// resolution, the provider lifecycle, and the channel-keyed registry the
// host runtime loads providers into.
package notification

import (
	"time"

	"github.com/google/uuid"
)

// ChannelMock is the channel tag this provider handles. The host routes a
// notification here when its channel field carries this literal.
const ChannelMock = "mock"

// State represents the provider lifecycle state.
type State string

const (
	// StateUninitialized is the state before Initialize has been called
	StateUninitialized State = "uninitialized"
	// StateReady is the state after a successful Initialize
	StateReady State = "ready"
	// StateShutdown is the terminal state after Shutdown
	StateShutdown State = "shutdown"
)

// Recipient identifies the delivery target of a notification.
type Recipient struct {
	UserID string `json:"user_id" validate:"required"`
}

// Content is the payload delivered to the recipient.
type Content struct {
	Message string `json:"message" validate:"required"`
}

// Notification is the unit of work handed to a provider. It is constructed
// by the host from an inbound dispatch request, validated at the provider
// boundary, and never mutated afterwards.
type Notification struct {
	NotificationID string    `json:"notification_id" validate:"required"`
	RequestID      uuid.UUID `json:"request_id" validate:"required"`
	ClientID       uuid.UUID `json:"client_id" validate:"required"`
	Channel        string    `json:"channel" validate:"required,known_channel"`
	WebhookURL     string    `json:"webhook_url" validate:"required"`
	RetryCount     int       `json:"retry_count" validate:"min=0"`
	Recipient      Recipient `json:"recipient" validate:"required"`
	Content        Content   `json:"content" validate:"required"`
	// CreatedAt accepts an RFC 3339 string on the wire and is normalized to
	// a time.Time during validation.
	CreatedAt time.Time `json:"created_at"`
}

// Manifest is the static descriptive metadata the host reads at plugin
// registration time. It is defined at construction and never mutated.
type Manifest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Channel     string   `json:"channel"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Homepage    string   `json:"homepage"`
	Credentials []string `json:"credentials"`
}

// ProviderConfig is supplied once by the host at initialization. The
// provider keeps a read-only reference for the rest of its lifetime.
type ProviderConfig struct {
	ID          string            `json:"id"`
	Credentials map[string]string `json:"credentials"`
	Options     map[string]any    `json:"options"`
}

// DeliveryResult is the outcome record of one Send invocation.
type DeliveryResult struct {
	Success        bool      `json:"success"`
	NotificationID string    `json:"notification_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	Error          string    `json:"error,omitempty"`
}

// HealthStatus is the outcome of a provider health check.
type HealthStatus struct {
	Healthy   bool      `json:"healthy"`
	Message   string    `json:"message,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
