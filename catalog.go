package lensmap

import (
	"context"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/filter"
	"github.com/agentstation/lensmap/pkg/logging"
)

// Lenses returns the catalog lenses matching the criteria, in catalog order.
// The zero Criteria returns every lens.
func (c *Client) Lenses(ctx context.Context, criteria filter.Criteria) ([]catalogs.Lens, error) {
	ctx = c.withLogger(ctx)

	lenses, err := c.provider.Lenses(ctx)
	if err != nil {
		return nil, err
	}

	matched := filter.Apply(lenses, criteria)
	logging.FromContext(ctx).Debug().
		Str("criteria", criteria.String()).
		Int("total", len(lenses)).
		Int("matched", len(matched)).
		Msg("Filtered lenses")
	return matched, nil
}

// Search returns the lenses whose name, manufacturer, or description contain
// the query, ignoring case.
func (c *Client) Search(ctx context.Context, query string) ([]catalogs.Lens, error) {
	return c.Lenses(ctx, filter.NewCriteria(filter.WithSearch(query)))
}

// Lens returns a single lens.
func (c *Client) Lens(ctx context.Context, id string) (catalogs.Lens, error) {
	return c.provider.Lens(logging.WithLens(c.withLogger(ctx), id), id)
}

// Cameras returns every camera.
func (c *Client) Cameras(ctx context.Context) ([]catalogs.Camera, error) {
	return c.provider.Cameras(c.withLogger(ctx))
}

// Camera returns a single camera.
func (c *Client) Camera(ctx context.Context, id string) (catalogs.Camera, error) {
	return c.provider.Camera(c.withLogger(ctx), id)
}

// RecordingFormats returns every recording format.
func (c *Client) RecordingFormats(ctx context.Context) ([]catalogs.RecordingFormat, error) {
	return c.provider.RecordingFormats(c.withLogger(ctx))
}

// Rentals returns every rental.
func (c *Client) Rentals(ctx context.Context) ([]catalogs.Rental, error) {
	return c.provider.Rentals(c.withLogger(ctx))
}

// Rental returns a single rental.
func (c *Client) Rental(ctx context.Context, id string) (catalogs.Rental, error) {
	return c.provider.Rental(logging.WithRental(c.withLogger(ctx), id), id)
}
