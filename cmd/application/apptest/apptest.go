// Package apptest provides Application mocks for command tests.
package apptest

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap"
	"github.com/agentstation/lensmap/cmd/application"
	"github.com/agentstation/lensmap/internal/sources/memory"
	"github.com/agentstation/lensmap/pkg/catalogs"
)

// NewMock returns a Mock serving the shared test lens catalog with
// in-memory preferences, writing results to the returned buffer in format.
func NewMock(t testing.TB, format string) (*application.Mock, *bytes.Buffer) {
	t.Helper()

	camera := catalogs.TestCamera(t)
	kit := catalogs.TestRental(t, "kit", "d", "a")
	kit.CameraIDs = []string{camera.ID}

	provider, err := memory.New(catalogs.Snapshot{
		Lenses:  catalogs.TestLenses(t),
		Cameras: []catalogs.Camera{camera},
		Rentals: []catalogs.Rental{kit, catalogs.TestRental(t, "solo", "a")},
	})
	require.NoError(t, err)

	client, err := lensmap.New(context.Background(), lensmap.WithProvider(provider))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &application.Mock{
		ClientFunc:       func(context.Context) (*lensmap.Client, error) { return client, nil },
		OutputFormatFunc: func() string { return format },
		Out:              out,
	}, out
}
