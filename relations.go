package lensmap

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/logging"
	"github.com/agentstation/lensmap/pkg/relations"
)

// LensesForRental returns the lenses a rental references, in catalog order.
func (c *Client) LensesForRental(ctx context.Context, rentalID string) ([]catalogs.Lens, error) {
	ctx = logging.WithRental(c.withLogger(ctx), rentalID)

	lenses, rentals, err := c.lensesAndRentals(ctx)
	if err != nil {
		return nil, err
	}
	return relations.LensesForRental(rentalID, lenses, rentals)
}

// RentalsForLens returns the rentals referencing a lens, in catalog order.
func (c *Client) RentalsForLens(ctx context.Context, lensID string) ([]catalogs.Rental, error) {
	ctx = logging.WithLens(c.withLogger(ctx), lensID)

	lenses, rentals, err := c.lensesAndRentals(ctx)
	if err != nil {
		return nil, err
	}
	return relations.RentalsForLens(lensID, lenses, rentals)
}

// CamerasForRental returns the cameras a rental references, in catalog order.
func (c *Client) CamerasForRental(ctx context.Context, rentalID string) ([]catalogs.Camera, error) {
	ctx = logging.WithRental(c.withLogger(ctx), rentalID)

	var (
		cameras []catalogs.Camera
		rentals []catalogs.Rental
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cameras, err = c.provider.Cameras(gctx)
		return err
	})
	g.Go(func() (err error) {
		rentals, err = c.provider.Rentals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return relations.CamerasForRental(rentalID, cameras, rentals)
}

// lensesAndRentals fetches both collections concurrently. The first
// failure cancels the other fetch and is returned.
func (c *Client) lensesAndRentals(ctx context.Context) ([]catalogs.Lens, []catalogs.Rental, error) {
	var (
		lenses  []catalogs.Lens
		rentals []catalogs.Rental
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		lenses, err = c.provider.Lenses(gctx)
		return err
	})
	g.Go(func() (err error) {
		rentals, err = c.provider.Rentals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return lenses, rentals, nil
}
