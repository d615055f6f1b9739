package preferences

import "context"

// Store persists the two preference sets. Implementations must be safe for
// concurrent use and must not retain the Set passed to a save.
type Store interface {
	LoadFavorites(ctx context.Context) (Set, error)
	SaveFavorites(ctx context.Context, favorites Set) error
	LoadComparison(ctx context.Context) (Set, error)
	SaveComparison(ctx context.Context, comparison Set) error
}
