package preferences

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/lensmap/pkg/constants"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/logging"
)

// ChangeHook is called after a set has been persisted and committed. It
// receives a snapshot of the new set.
type ChangeHook func(kind SetKind, members Set)

// Option configures a Manager.
type Option func(*options) error

type options struct {
	hooks  []ChangeHook
	logger *zerolog.Logger
}

// WithOnChange registers a hook notified after every committed mutation.
// Hooks run outside the set lock and may call back into the manager.
func WithOnChange(fn ChangeHook) Option {
	return func(o *options) error {
		if fn == nil {
			return errors.NewValidationError("on_change", nil, "hook cannot be nil")
		}
		o.hooks = append(o.hooks, fn)
		return nil
	}
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// Manager owns the favorites and comparison sets.
type Manager struct {
	favorites  *guardedSet
	comparison *guardedSet
	hooks      []ChangeHook
	logger     *zerolog.Logger
}

// guardedSet pairs a set with the lock that serializes its mutations.
type guardedSet struct {
	kind    SetKind
	mu      sync.Mutex
	members Set
	save    func(context.Context, Set) error
}

// New loads both sets from store and returns a ready manager. A persisted
// comparison set larger than the capacity is rejected as corrupted.
func New(ctx context.Context, store Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, errors.NewValidationError("store", nil, "preference store is required")
	}

	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	favorites, err := store.LoadFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}
	comparison, err := store.LoadComparison(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading comparison: %w", err)
	}
	if comparison.Len() > constants.MaxComparisonItems {
		return nil, errors.NewDataCorrupted(
			fmt.Sprintf("comparison set holds %d lenses, at most %d allowed", comparison.Len(), constants.MaxComparisonItems),
			nil,
		)
	}

	m := &Manager{
		hooks:  o.hooks,
		logger: o.logger,
	}
	m.favorites = &guardedSet{kind: FavoritesSet, members: favorites.Clone(), save: store.SaveFavorites}
	m.comparison = &guardedSet{kind: ComparisonSet, members: comparison.Clone(), save: store.SaveComparison}

	logging.FromContext(m.withLogger(ctx)).Debug().
		Int("favorites", favorites.Len()).
		Int("comparison", comparison.Len()).
		Msg("Loaded preferences")

	return m, nil
}

// IsFavorite reports whether the lens is a favorite.
func (m *Manager) IsFavorite(id string) bool {
	return m.favorites.has(id)
}

// Favorites returns a snapshot of the favorites set.
func (m *Manager) Favorites() Set {
	return m.favorites.snapshot()
}

// ToggleFavorite flips the lens's favorite membership and returns the new
// membership. On error the set is unchanged and the old membership is
// returned.
func (m *Manager) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if err := validateID(id); err != nil {
		return false, err
	}

	var member bool
	committed, err := m.mutate(ctx, m.favorites, "toggle_favorite", id, func(next Set) error {
		if next.Has(id) {
			delete(next, id)
			member = false
		} else {
			next[id] = struct{}{}
			member = true
		}
		return nil
	})
	if err != nil {
		return committed.Has(id), err
	}
	return member, nil
}

// SaveFavorites replaces the whole favorites set.
func (m *Manager) SaveFavorites(ctx context.Context, favorites Set) error {
	for id := range favorites {
		if err := validateID(id); err != nil {
			return err
		}
	}

	_, err := m.mutate(ctx, m.favorites, "save_favorites", "", func(next Set) error {
		clear(next)
		for id := range favorites {
			next[id] = struct{}{}
		}
		return nil
	})
	return err
}

// Comparison returns a snapshot of the comparison set.
func (m *Manager) Comparison() Set {
	return m.comparison.snapshot()
}

// IsComparing reports whether the lens is in the comparison set.
func (m *Manager) IsComparing(id string) bool {
	return m.comparison.has(id)
}

// AddToComparison adds the lens to the comparison set. Adding a lens that
// is already present succeeds. Adding to a full set fails with
// errors.ErrMaxComparisonItemsReached and changes nothing.
func (m *Manager) AddToComparison(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	_, err := m.mutate(ctx, m.comparison, "add_to_comparison", id, func(next Set) error {
		if next.Has(id) {
			return nil
		}
		if next.Len() >= constants.MaxComparisonItems {
			return errors.ErrMaxComparisonItemsReached
		}
		next[id] = struct{}{}
		return nil
	})
	return err
}

// RemoveFromComparison removes the lens from the comparison set. Removing
// an absent lens succeeds.
func (m *Manager) RemoveFromComparison(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	_, err := m.mutate(ctx, m.comparison, "remove_from_comparison", id, func(next Set) error {
		delete(next, id)
		return nil
	})
	return err
}

// ClearComparison empties the comparison set.
func (m *Manager) ClearComparison(ctx context.Context) error {
	_, err := m.mutate(ctx, m.comparison, "clear_comparison", "", func(next Set) error {
		clear(next)
		return nil
	})
	return err
}

// mutate applies change to a copy of the set, persists the copy and commits
// it only when the save succeeds. It returns the set as it stands after the
// call.
func (m *Manager) mutate(ctx context.Context, gs *guardedSet, op, id string, change func(next Set) error) (Set, error) {
	ctx = logging.WithOperation(m.withLogger(ctx), op)
	if id != "" {
		ctx = logging.WithLens(ctx, id)
	}
	logger := logging.FromContext(ctx)

	gs.mu.Lock()
	next := gs.members.Clone()
	if err := change(next); err != nil {
		current := gs.members.Clone()
		gs.mu.Unlock()
		logger.Debug().Err(err).Msg("Rejected preference change")
		return current, wrapOp(op, id, err)
	}
	if err := gs.save(ctx, next.Clone()); err != nil {
		current := gs.members.Clone()
		gs.mu.Unlock()
		logger.Warn().Err(err).Str("set", gs.kind.String()).Msg("Failed to persist preferences")
		return current, wrapOp(op, id, err)
	}
	gs.members = next
	snapshot := next.Clone()
	gs.mu.Unlock()

	logger.Debug().
		Str("set", gs.kind.String()).
		Int("size", snapshot.Len()).
		Msg("Committed preference change")

	for _, hook := range m.hooks {
		hook(gs.kind, snapshot.Clone())
	}
	return snapshot, nil
}

// withLogger installs the manager's logger when ctx carries none.
func (m *Manager) withLogger(ctx context.Context) context.Context {
	if m.logger != nil && logging.FromContext(ctx) == logging.Default() {
		return logging.WithLogger(ctx, m.logger)
	}
	return ctx
}

func (gs *guardedSet) has(id string) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.members.Has(id)
}

func (gs *guardedSet) snapshot() Set {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.members.Clone()
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewValidationError("lens_id", id, "lens ID cannot be empty")
	}
	return nil
}

func wrapOp(op, id string, err error) error {
	if id == "" {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s %s: %w", op, id, err)
}
