// Package memory provides a catalog provider backed by an in-memory
// snapshot. It serves as the decoded form for file based sources and as a
// test double with failure injection.
package memory

import (
	"context"
	"sync"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/errors"
)

var _ catalogs.Provider = (*Provider)(nil)

// Provider serves records from validated collections. Every returned record
// is a copy.
type Provider struct {
	lenses  *catalogs.Collection[catalogs.Lens]
	cameras *catalogs.Collection[catalogs.Camera]
	formats *catalogs.Collection[catalogs.RecordingFormat]
	rentals *catalogs.Collection[catalogs.Rental]

	mu   sync.RWMutex
	fail error
}

// New validates the snapshot and indexes it. Invalid snapshots are
// reported as DataCorrupted.
func New(snapshot catalogs.Snapshot) (*Provider, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, errors.NewDataCorrupted("invalid catalog", err)
	}
	snapshot = snapshot.Copy()

	p := &Provider{}
	var err error
	if p.lenses, err = catalogs.NewLenses(snapshot.Lenses...); err != nil {
		return nil, errors.NewDataCorrupted("indexing lenses", err)
	}
	if p.cameras, err = catalogs.NewCameras(snapshot.Cameras...); err != nil {
		return nil, errors.NewDataCorrupted("indexing cameras", err)
	}
	if p.formats, err = catalogs.NewRecordingFormats(snapshot.Formats...); err != nil {
		return nil, errors.NewDataCorrupted("indexing formats", err)
	}
	if p.rentals, err = catalogs.NewRentals(snapshot.Rentals...); err != nil {
		return nil, errors.NewDataCorrupted("indexing rentals", err)
	}
	return p, nil
}

// Fail makes every subsequent call return err. A nil err restores normal
// operation.
func (p *Provider) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail = err
}

// Snapshot returns a copy of the served catalog.
func (p *Provider) Snapshot() catalogs.Snapshot {
	return catalogs.Snapshot{
		Lenses:  p.lenses.List(),
		Cameras: p.cameras.List(),
		Formats: p.formats.List(),
		Rentals: p.rentals.List(),
	}.Copy()
}

// Lenses implements catalogs.LensReader.
func (p *Provider) Lenses(ctx context.Context) ([]catalogs.Lens, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}
	return copyAll(p.lenses.List(), catalogs.Lens.Copy), nil
}

// Lens implements catalogs.LensReader.
func (p *Provider) Lens(ctx context.Context, id string) (catalogs.Lens, error) {
	if err := p.check(ctx); err != nil {
		return catalogs.Lens{}, err
	}
	lens, ok := p.lenses.Get(id)
	if !ok {
		return catalogs.Lens{}, errors.NewLensNotFound(id)
	}
	return lens.Copy(), nil
}

// Cameras implements catalogs.CameraReader.
func (p *Provider) Cameras(ctx context.Context) ([]catalogs.Camera, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}
	return copyAll(p.cameras.List(), catalogs.Camera.Copy), nil
}

// Camera implements catalogs.CameraReader.
func (p *Provider) Camera(ctx context.Context, id string) (catalogs.Camera, error) {
	if err := p.check(ctx); err != nil {
		return catalogs.Camera{}, err
	}
	camera, ok := p.cameras.Get(id)
	if !ok {
		return catalogs.Camera{}, errors.NewCameraNotFound(id)
	}
	return camera.Copy(), nil
}

// RecordingFormats implements catalogs.CameraReader.
func (p *Provider) RecordingFormats(ctx context.Context) ([]catalogs.RecordingFormat, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}
	return p.formats.List(), nil
}

// Rentals implements catalogs.RentalReader.
func (p *Provider) Rentals(ctx context.Context) ([]catalogs.Rental, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}
	return copyAll(p.rentals.List(), catalogs.Rental.Copy), nil
}

// Rental implements catalogs.RentalReader.
func (p *Provider) Rental(ctx context.Context, id string) (catalogs.Rental, error) {
	if err := p.check(ctx); err != nil {
		return catalogs.Rental{}, err
	}
	rental, ok := p.rentals.Get(id)
	if !ok {
		return catalogs.Rental{}, errors.NewRentalNotFound(id)
	}
	return rental.Copy(), nil
}

func (p *Provider) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.fail
}

func copyAll[T any](items []T, cp func(T) T) []T {
	for i := range items {
		items[i] = cp(items[i])
	}
	return items
}
