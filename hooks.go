package lensmap

import (
	"sync"

	"github.com/agentstation/lensmap/pkg/preferences"
)

// Hook function types for preference events
type (
	// FavoritesChangedHook is called after the favorites set changes
	FavoritesChangedHook func(favorites preferences.Set)

	// ComparisonChangedHook is called after the comparison set changes
	ComparisonChangedHook func(comparison preferences.Set)
)

// hooks manages event callbacks for preference changes
type hooks struct {
	mu                  sync.RWMutex
	onFavoritesChanged  []FavoritesChangedHook
	onComparisonChanged []ComparisonChangedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnFavoritesChanged registers a callback for favorites changes.
func (c *Client) OnFavoritesChanged(fn FavoritesChangedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onFavoritesChanged = append(c.hooks.onFavoritesChanged, fn)
}

// OnComparisonChanged registers a callback for comparison changes.
func (c *Client) OnComparisonChanged(fn ComparisonChangedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onComparisonChanged = append(c.hooks.onComparisonChanged, fn)
}

// trigger dispatches a committed change to the registered callbacks. Each
// callback receives its own copy of the set.
func (h *hooks) trigger(kind preferences.SetKind, set preferences.Set) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	switch kind {
	case preferences.FavoritesSet:
		for _, fn := range h.onFavoritesChanged {
			fn(set.Clone())
		}
	case preferences.ComparisonSet:
		for _, fn := range h.onComparisonChanged {
			fn(set.Clone())
		}
	}
}
