// Package local provides a catalog provider over YAML documents in an
// fs.FS: lenses.yaml, cameras.yaml, formats.yaml and rentals.yaml. Only
// lenses.yaml is required. Documents are read once, on first use.
package local

import (
	"context"
	"io/fs"
	"os"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/lensmap/internal/embedded"
	"github.com/agentstation/lensmap/internal/sources/memory"
	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/constants"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/logging"
)

var _ catalogs.Provider = (*Provider)(nil)

// Provider decodes the documents into an in-memory provider.
type Provider struct {
	fsys fs.FS
	name string

	mu     sync.Mutex
	loaded *memory.Provider
	err    error
}

// New creates a provider reading from fsys.
func New(fsys fs.FS) *Provider {
	return &Provider{fsys: fsys, name: "fs"}
}

// NewFromDir creates a provider reading from a directory on disk.
func NewFromDir(dir string) *Provider {
	return &Provider{fsys: os.DirFS(dir), name: dir}
}

// NewEmbedded creates a provider over the catalog compiled into the binary.
func NewEmbedded() *Provider {
	return &Provider{fsys: embedded.FS(), name: "embedded"}
}

// Name describes where the documents come from.
func (p *Provider) Name() string {
	return p.name
}

// Load reads and validates the documents. It is called implicitly by every
// read; calling it up front surfaces a corrupted catalog early. The outcome,
// including failure, is cached.
func (p *Provider) Load(ctx context.Context) error {
	_, err := p.provider(ctx)
	return err
}

func (p *Provider) provider(ctx context.Context) (*memory.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded != nil || p.err != nil {
		return p.loaded, p.err
	}

	logger := logging.FromContext(logging.WithSource(ctx, p.name))
	snapshot, err := p.decode()
	if err == nil {
		p.loaded, err = memory.New(snapshot)
	}
	if err != nil {
		p.err = err
		logger.Error().Err(err).Msg("Failed to load catalog")
		return nil, err
	}

	logger.Debug().
		Int("lenses", len(snapshot.Lenses)).
		Int("cameras", len(snapshot.Cameras)).
		Int("rentals", len(snapshot.Rentals)).
		Msg("Loaded catalog")
	return p.loaded, nil
}

func (p *Provider) decode() (catalogs.Snapshot, error) {
	var s catalogs.Snapshot
	if err := readDocument(p.fsys, constants.LensesFile, true, &s.Lenses); err != nil {
		return s, err
	}
	if err := readDocument(p.fsys, constants.CamerasFile, false, &s.Cameras); err != nil {
		return s, err
	}
	if err := readDocument(p.fsys, constants.FormatsFile, false, &s.Formats); err != nil {
		return s, err
	}
	if err := readDocument(p.fsys, constants.RentalsFile, false, &s.Rentals); err != nil {
		return s, err
	}
	return s, nil
}

func readDocument(fsys fs.FS, name string, required bool, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return errors.NewDataCorrupted("reading "+name, errors.WrapIO("read", name, err))
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.WrapParse("yaml", name, err)
	}
	return nil
}

// Lenses implements catalogs.LensReader.
func (p *Provider) Lenses(ctx context.Context) ([]catalogs.Lens, error) {
	mp, err := p.provider(ctx)
	if err != nil {
		return nil, err
	}
	return mp.Lenses(ctx)
}

// Lens implements catalogs.LensReader.
func (p *Provider) Lens(ctx context.Context, id string) (catalogs.Lens, error) {
	mp, err := p.provider(ctx)
	if err != nil {
		return catalogs.Lens{}, err
	}
	return mp.Lens(ctx, id)
}

// Cameras implements catalogs.CameraReader.
func (p *Provider) Cameras(ctx context.Context) ([]catalogs.Camera, error) {
	mp, err := p.provider(ctx)
	if err != nil {
		return nil, err
	}
	return mp.Cameras(ctx)
}

// Camera implements catalogs.CameraReader.
func (p *Provider) Camera(ctx context.Context, id string) (catalogs.Camera, error) {
	mp, err := p.provider(ctx)
	if err != nil {
		return catalogs.Camera{}, err
	}
	return mp.Camera(ctx, id)
}

// RecordingFormats implements catalogs.CameraReader.
func (p *Provider) RecordingFormats(ctx context.Context) ([]catalogs.RecordingFormat, error) {
	mp, err := p.provider(ctx)
	if err != nil {
		return nil, err
	}
	return mp.RecordingFormats(ctx)
}

// Rentals implements catalogs.RentalReader.
func (p *Provider) Rentals(ctx context.Context) ([]catalogs.Rental, error) {
	mp, err := p.provider(ctx)
	if err != nil {
		return nil, err
	}
	return mp.Rentals(ctx)
}

// Rental implements catalogs.RentalReader.
func (p *Provider) Rental(ctx context.Context, id string) (catalogs.Rental, error) {
	mp, err := p.provider(ctx)
	if err != nil {
		return catalogs.Rental{}, err
	}
	return mp.Rental(ctx, id)
}
