package notification

import (
	"context"
	"log/slog"
	"sync"
)

// capturingHandler is a slog.Handler that records every log record so tests
// can assert on emitted observability events without capturing process output.
type capturingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *capturingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *capturingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *capturingHandler) WithGroup(string) slog.Handler { return h }

// messages returns the recorded log messages in order.
func (h *capturingHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := make([]string, 0, len(h.records))
	for _, r := range h.records {
		msgs = append(msgs, r.Message)
	}
	return msgs
}

// attr returns the string value of the named attribute on the i-th record.
func (h *capturingHandler) attr(i int, key string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if i >= len(h.records) {
		return ""
	}
	var value string
	h.records[i].Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			return false
		}
		return true
	})
	return value
}

// validNotificationInput returns a payload that satisfies the notification
// schema. Tests mutate the copy to produce invalid variants.
func validNotificationInput() map[string]any {
	return map[string]any{
		"notification_id": "ntf-0001",
		"request_id":      "8a9bfcee-6c42-4f95-a17b-3d9ad94e8a01",
		"client_id":       "f3b8a6a0-18c2-49cf-9d4e-2f6f1c5f7b42",
		"channel":         "mock",
		"webhook_url":     "https://dispatch.example.com/hooks/mock",
		"retry_count":     0,
		"recipient":       map[string]any{"user_id": "user-42"},
		"content":         map[string]any{"message": "hello from the dispatch platform"},
		"created_at":      "2024-05-01T10:30:00Z",
	}
}

// hasViolation reports whether the result carries a violation for the field.
func hasViolation(result *Result, field string) bool {
	for _, v := range result.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}
