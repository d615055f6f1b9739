// Package lensmap provides a unified interface for browsing a cinema lens
// catalog and managing a user's favorite and comparison lenses.
//
// A Client combines a catalog Provider with a preference Manager. Catalog
// reads are delegated to the provider and narrowed with the filter engine;
// relation queries fetch the collections they join concurrently.
//
// Example usage:
//
//	client, err := lensmap.New(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	lenses, err := client.Lenses(ctx, filter.NewCriteria(
//		filter.WithManufacturer("Zeiss"),
//		filter.OnlyRentable(),
//	))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Track preference changes
//	client.OnComparisonChanged(func(ids preferences.Set) {
//		fmt.Printf("Comparing %d lenses\n", ids.Len())
//	})
//
//	if err := client.Preferences().AddToComparison(ctx, lenses[0].ID); err != nil {
//		log.Fatal(err)
//	}
package lensmap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/logging"
	"github.com/agentstation/lensmap/pkg/preferences"
)

// Compile-time interface checks.
var (
	_ catalogs.CameraReader = (*Client)(nil)
	_ catalogs.RentalReader = (*Client)(nil)
)

// Client is the library entry point. It is safe for concurrent use.
type Client struct {
	provider    catalogs.Provider
	preferences *preferences.Manager
	logger      *zerolog.Logger
	hooks       *hooks
}

// New creates a Client. Without options it serves the embedded catalog and
// keeps preferences in memory. Preferences are loaded from the store before
// New returns.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	c := &Client{
		provider: cfg.provider,
		logger:   cfg.logger,
		hooks:    newHooks(),
	}

	c.preferences, err = preferences.New(c.withLogger(ctx), cfg.store,
		preferences.WithLogger(cfg.logger),
		preferences.WithOnChange(c.hooks.trigger),
	)
	if err != nil {
		return nil, fmt.Errorf("creating preferences: %w", err)
	}

	return c, nil
}

// Preferences returns the preference manager backing the client.
func (c *Client) Preferences() *preferences.Manager {
	return c.preferences
}

// withLogger installs the client's logger when ctx carries none.
func (c *Client) withLogger(ctx context.Context) context.Context {
	if c.logger != nil && logging.FromContext(ctx) == logging.Default() {
		return logging.WithLogger(ctx, c.logger)
	}
	return ctx
}
