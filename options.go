package lensmap

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/lensmap/internal/sources/local"
	"github.com/agentstation/lensmap/internal/store/memory"
	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/preferences"
)

// Option is a function that configures a Client.
type Option func(*config) error

// config holds the client configuration.
type config struct {
	provider catalogs.Provider
	store    preferences.Store
	logger   *zerolog.Logger
}

// defaults serves the embedded catalog and keeps preferences in memory.
func defaults() *config {
	return &config{
		provider: local.NewEmbedded(),
		store:    memory.New(),
	}
}

// apply applies the given options to the config.
func (c *config) apply(opts ...Option) (*config, error) {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithProvider configures the catalog provider.
func WithProvider(provider catalogs.Provider) Option {
	return func(c *config) error {
		if provider == nil {
			return errors.NewValidationError("provider", nil, "must not be nil")
		}
		c.provider = provider
		return nil
	}
}

// WithStore configures where favorites and comparison sets are persisted.
func WithStore(store preferences.Store) Option {
	return func(c *config) error {
		if store == nil {
			return errors.NewValidationError("store", nil, "must not be nil")
		}
		c.store = store
		return nil
	}
}

// WithLogger configures the logger used when a call's context carries none.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
