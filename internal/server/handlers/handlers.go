// Package handlers provides HTTP request handlers for the catalog API.
package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/filter"
)

// Catalog is the read surface the handlers serve.
type Catalog interface {
	Lenses(ctx context.Context, criteria filter.Criteria) ([]catalogs.Lens, error)
	Lens(ctx context.Context, id string) (catalogs.Lens, error)
	Cameras(ctx context.Context) ([]catalogs.Camera, error)
	Camera(ctx context.Context, id string) (catalogs.Camera, error)
	RecordingFormats(ctx context.Context) ([]catalogs.RecordingFormat, error)
	Rentals(ctx context.Context) ([]catalogs.Rental, error)
	Rental(ctx context.Context, id string) (catalogs.Rental, error)
	LensesForRental(ctx context.Context, rentalID string) ([]catalogs.Lens, error)
	RentalsForLens(ctx context.Context, lensID string) ([]catalogs.Rental, error)
	CamerasForRental(ctx context.Context, rentalID string) ([]catalogs.Camera, error)
}

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	catalog   Catalog
	logger    *zerolog.Logger
	version   string
	startTime time.Time
}

// New creates a new Handlers instance.
func New(catalog Catalog, logger *zerolog.Logger, version string) *Handlers {
	return &Handlers{
		catalog:   catalog,
		logger:    logger,
		version:   version,
		startTime: time.Now(),
	}
}
