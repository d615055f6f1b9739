package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/errors"
)

func newProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(catalogs.Snapshot{
		Lenses:  catalogs.TestLenses(t),
		Cameras: []catalogs.Camera{catalogs.TestCamera(t)},
		Formats: []catalogs.RecordingFormat{{ID: "super35", Name: "Super 35", Width: 24.89, Height: 18.66}},
		Rentals: []catalogs.Rental{catalogs.TestRental(t, "r1", "a", "c")},
	})
	require.NoError(t, err)
	return p
}

func TestReads(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	lenses, err := p.Lenses(ctx)
	require.NoError(t, err)
	assert.Len(t, lenses, 5)
	assert.Equal(t, "a", lenses[0].ID)

	lens, err := p.Lens(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "Long Zoom", lens.Name)

	camera, err := p.Camera(ctx, "test-camera")
	require.NoError(t, err)
	assert.Equal(t, "PL", camera.Mount)

	formats, err := p.RecordingFormats(ctx)
	require.NoError(t, err)
	require.Len(t, formats, 1)

	rental, err := p.Rental(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, rental.LensIDs)
}

func TestNotFoundKinds(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	tests := []struct {
		name string
		call func() error
		want errors.Kind
	}{
		{"lens", func() error { _, err := p.Lens(ctx, "ghost"); return err }, errors.KindLensNotFound},
		{"camera", func() error { _, err := p.Camera(ctx, "ghost"); return err }, errors.KindCameraNotFound},
		{"rental", func() error { _, err := p.Rental(ctx, "ghost"); return err }, errors.KindRentalNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			kind, ok := errors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, kind)
			assert.Contains(t, err.Error(), "ghost")
		})
	}
}

func TestReturnsCopies(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	lenses, err := p.Lenses(ctx)
	require.NoError(t, err)
	lenses[0].Formats[0] = "imax"
	lenses[0].Name = "changed"

	again, err := p.Lens(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Standard Zoom", again.Name)
	assert.Equal(t, catalogs.FormatID("full-frame"), again.Formats[0])
}

func TestInvalidSnapshotIsDataCorrupted(t *testing.T) {
	tests := []struct {
		name     string
		snapshot catalogs.Snapshot
	}{
		{"duplicate lens", catalogs.Snapshot{Lenses: []catalogs.Lens{catalogs.TestLens(t), catalogs.TestLens(t)}}},
		{"inverted focal range", catalogs.Snapshot{Lenses: []catalogs.Lens{{ID: "x", FocalRange: catalogs.FocalRange{Min: 70, Max: 24}, MaxAperture: 2.8}}}},
		{"rental without id", catalogs.Snapshot{Rentals: []catalogs.Rental{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.snapshot)
			require.Error(t, err)
			assert.True(t, errors.IsDataCorrupted(err))
		})
	}
}

func TestFailureInjection(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	p.Fail(errors.NewNetworkError("catalog offline", nil))
	_, err := p.Lenses(ctx)
	assert.True(t, errors.IsNetwork(err))
	_, err = p.Rental(ctx, "r1")
	assert.True(t, errors.IsNetwork(err))

	p.Fail(nil)
	_, err = p.Lenses(ctx)
	assert.NoError(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.Cameras(canceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSnapshotRoundTrip(t *testing.T) {
	p := newProvider(t)
	again, err := New(p.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, p.Snapshot(), again.Snapshot())
}
