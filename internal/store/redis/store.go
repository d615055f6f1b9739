// Package redis persists preference sets in Redis, one Redis set per
// preference set.
package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/agentstation/lensmap/pkg/constants"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/logging"
	"github.com/agentstation/lensmap/pkg/preferences"
)

var _ preferences.Store = (*Store)(nil)

// Store reads and writes the preference sets under a key prefix.
type Store struct {
	client redis.Cmdable
	prefix string
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides the key prefix. Keys are "<prefix>:favorites" and
// "<prefix>:comparison".
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			s.prefix = prefix
		}
	}
}

// New wraps an existing client.
func New(client redis.Cmdable, opts ...Option) *Store {
	s := &Store{client: client, prefix: constants.RedisKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr, password string, db int, opts ...Option) (*Store, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errors.NewNetworkError("connecting to redis at "+addr, err)
	}
	return New(client, opts...), client, nil
}

// Key returns the Redis key holding the given set.
func (s *Store) Key(kind preferences.SetKind) string {
	return fmt.Sprintf("%s:%s", s.prefix, kind)
}

// LoadFavorites implements preferences.Store.
func (s *Store) LoadFavorites(ctx context.Context) (preferences.Set, error) {
	return s.load(ctx, preferences.FavoritesSet)
}

// SaveFavorites implements preferences.Store.
func (s *Store) SaveFavorites(ctx context.Context, favorites preferences.Set) error {
	return s.save(ctx, preferences.FavoritesSet, favorites)
}

// LoadComparison implements preferences.Store.
func (s *Store) LoadComparison(ctx context.Context) (preferences.Set, error) {
	return s.load(ctx, preferences.ComparisonSet)
}

// SaveComparison implements preferences.Store.
func (s *Store) SaveComparison(ctx context.Context, comparison preferences.Set) error {
	return s.save(ctx, preferences.ComparisonSet, comparison)
}

func (s *Store) load(ctx context.Context, kind preferences.SetKind) (preferences.Set, error) {
	members, err := s.client.SMembers(ctx, s.Key(kind)).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.NewNetworkError("loading "+kind.String()+" from redis", err)
	}
	for _, id := range members {
		if strings.TrimSpace(id) == "" {
			return nil, errors.NewDataCorrupted(s.Key(kind)+": empty lens id", nil)
		}
	}
	return preferences.NewSet(members...), nil
}

// save replaces the Redis set in a single MULTI/EXEC transaction.
func (s *Store) save(ctx context.Context, kind preferences.SetKind, set preferences.Set) error {
	key := s.Key(kind)
	ids := set.Sorted()

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(ids) > 0 {
			members := make([]any, len(ids))
			for i, id := range ids {
				members[i] = id
			}
			pipe.SAdd(ctx, key, members...)
		}
		return nil
	})
	if err != nil {
		return errors.NewNetworkError("saving "+kind.String()+" to redis", err)
	}

	logging.FromContext(ctx).Debug().
		Str("key", key).
		Int("size", len(ids)).
		Msg("Saved preference set")
	return nil
}
