package notification

import (
	"sort"
	"sync"

	"github.com/relaykit/mock-provider/internal/errors"
)

// Sentinel errors for registry operations
var (
	ErrProviderNotFound = errors.Newf("provider not found").Component("notification").Category(errors.CategoryNotFound).Build()
)

// Registry indexes providers by the channel tag they handle, the way the
// host runtime routes an inbound dispatch request to its plugin. It depends
// only on the Provider interface.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under its manifest channel. Registering a second
// provider for a channel already taken is a conflict.
func (r *Registry) Register(p Provider) error {
	channel := p.Manifest().Channel

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[channel]; exists {
		return errors.Newf("provider already registered for channel %q", channel).
			Component("notification").
			Category(errors.CategoryConflict).
			Build()
	}
	r.providers[channel] = p
	return nil
}

// Get returns the provider handling the given channel.
func (r *Registry) Get(channel string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.providers[channel]
	if !exists {
		return nil, ErrProviderNotFound
	}
	return p, nil
}

// Channels returns the registered channel tags in sorted order.
func (r *Registry) Channels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channels := make([]string, 0, len(r.providers))
	for channel := range r.providers {
		channels = append(channels, channel)
	}
	sort.Strings(channels)
	return channels
}
