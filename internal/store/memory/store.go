// Package memory provides an in-memory preference store for tests and
// ephemeral sessions. Failures can be injected per operation.
package memory

import (
	"context"
	"sync"

	"github.com/agentstation/lensmap/pkg/preferences"
)

var _ preferences.Store = (*Store)(nil)

// Store keeps both preference sets in memory.
type Store struct {
	mu         sync.Mutex
	favorites  preferences.Set
	comparison preferences.Set

	loadErr error
	saveErr error
	saves   int
}

// Option configures a Store.
type Option func(*Store)

// WithFavorites seeds the favorites set.
func WithFavorites(ids ...string) Option {
	return func(s *Store) { s.favorites = preferences.NewSet(ids...) }
}

// WithComparison seeds the comparison set. No capacity check is applied so
// that tests can seed corrupted state.
func WithComparison(ids ...string) Option {
	return func(s *Store) { s.comparison = preferences.NewSet(ids...) }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		favorites:  preferences.NewSet(),
		comparison: preferences.NewSet(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailLoads makes every subsequent load return err. A nil err clears it.
func (s *Store) FailLoads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// FailSaves makes every subsequent save return err. A nil err clears it.
func (s *Store) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves returns the number of successful saves.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// LoadFavorites implements preferences.Store.
func (s *Store) LoadFavorites(ctx context.Context) (preferences.Set, error) {
	return s.load(ctx, &s.favorites)
}

// SaveFavorites implements preferences.Store.
func (s *Store) SaveFavorites(ctx context.Context, favorites preferences.Set) error {
	return s.save(ctx, &s.favorites, favorites)
}

// LoadComparison implements preferences.Store.
func (s *Store) LoadComparison(ctx context.Context) (preferences.Set, error) {
	return s.load(ctx, &s.comparison)
}

// SaveComparison implements preferences.Store.
func (s *Store) SaveComparison(ctx context.Context, comparison preferences.Set) error {
	return s.save(ctx, &s.comparison, comparison)
}

func (s *Store) load(ctx context.Context, dst *preferences.Set) (preferences.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return dst.Clone(), nil
}

func (s *Store) save(ctx context.Context, dst *preferences.Set, set preferences.Set) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	*dst = set.Clone()
	s.saves++
	return nil
}
