package notification

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Interval is the refill window of a token-bucket rate limit.
type Interval string

const (
	IntervalSecond Interval = "second"
	IntervalMinute Interval = "minute"
	IntervalHour   Interval = "hour"
	IntervalDay    Interval = "day"
)

// Duration returns the length of the refill window. Unrecognized intervals
// fall back to one second, matching the resolution default.
func (i Interval) Duration() time.Duration {
	switch i {
	case IntervalSecond:
		return time.Second
	case IntervalMinute:
		return time.Minute
	case IntervalHour:
		return time.Hour
	case IntervalDay:
		return 24 * time.Hour
	default:
		return time.Second
	}
}

// RateLimitConfig describes the token-bucket throttle the host's
// rate-limiting engine applies to Send invocations. It is derived on demand
// from provider options and never persisted.
type RateLimitConfig struct {
	MaxTokens      int      `json:"maxTokens"`
	RefillRate     float64  `json:"refillRate"`
	RefillInterval Interval `json:"refillInterval"`
}

// DefaultRateLimitConfig returns the documented rate-limit defaults.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxTokens:      100,
		RefillRate:     10,
		RefillInterval: IntervalSecond,
	}
}

// ResolveRateLimit computes a fully populated RateLimitConfig from the
// free-form options mapping. Each field is resolved independently: a
// supplied value is used only when it is present and truthy, otherwise the
// default is substituted. A zero maxTokens or refillRate therefore resolves
// to the default, not to zero. That falsy-coalescing policy is deliberate
// and matches the behavior rate-limit consumers already depend on.
//
// Key lookup is case-insensitive: config loaders may fold keys to lower
// case (viper does on ReadInConfig), and the documented camelCase names
// have to resolve either way.
func ResolveRateLimit(options map[string]any) RateLimitConfig {
	cfg := DefaultRateLimitConfig()

	raw := lookupFold(options, "rateLimit")
	if raw == nil {
		return cfg
	}
	rateLimit := cast.ToStringMap(raw)

	if v := cast.ToInt(lookupFold(rateLimit, "maxTokens")); v != 0 {
		cfg.MaxTokens = v
	}
	if v := cast.ToFloat64(lookupFold(rateLimit, "refillRate")); v != 0 {
		cfg.RefillRate = v
	}
	if v := cast.ToString(lookupFold(rateLimit, "refillInterval")); v != "" {
		cfg.RefillInterval = Interval(v)
	}

	return cfg
}

// lookupFold returns the value stored under key, matching the key
// case-insensitively. Exact matches win; nil when no key folds equal.
func lookupFold(m map[string]any, key string) any {
	if v, ok := m[key]; ok {
		return v
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}
