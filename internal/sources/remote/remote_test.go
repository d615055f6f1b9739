package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/errors"
)

// catalogServer serves the test lenses and the canonical rental.
func catalogServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	lenses := catalogs.TestLenses(t)
	rentals := []catalogs.Rental{catalogs.TestRental(t, "r1", "a", "c")}
	var hits atomic.Int32

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("/v1/lenses", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, lenses)
	})
	mux.HandleFunc("/v1/lenses/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		id := strings.TrimPrefix(r.URL.Path, "/v1/lenses/")
		for _, l := range lenses {
			if l.ID == id {
				writeJSON(w, l)
				return
			}
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("/v1/rentals", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, rentals)
	})
	mux.HandleFunc("/v1/rentals/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/v1/cameras", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []catalogs.Camera{catalogs.TestCamera(t)})
	})
	mux.HandleFunc("/v1/formats", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"super35","name":"Super 35"`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newProvider(t *testing.T, url string, opts ...Option) *Provider {
	t.Helper()
	opts = append([]Option{WithAPIKey("secret"), WithRetries(0, 0)}, opts...)
	p, err := New(url, opts...)
	require.NoError(t, err)
	return p
}

func TestFetchesRecords(t *testing.T) {
	srv, _ := catalogServer(t)
	p := newProvider(t, srv.URL+"/v1/")
	ctx := context.Background()

	lenses, err := p.Lenses(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalogs.TestLenses(t), lenses)

	lens, err := p.Lens(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "Long Zoom", lens.Name)

	rentals, err := p.Rentals(ctx)
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, []string{"a", "c"}, rentals[0].LensIDs)

	cameras, err := p.Cameras(ctx)
	require.NoError(t, err)
	assert.Len(t, cameras, 1)
	assert.Equal(t, srv.URL+"/v1", p.BaseURL())
}

func TestErrorMapping(t *testing.T) {
	srv, _ := catalogServer(t)
	p := newProvider(t, srv.URL+"/v1")
	ctx := context.Background()

	_, err := p.Lens(ctx, "ghost")
	kind, ok := errors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errors.KindLensNotFound, kind)

	_, err = p.Rental(ctx, "ghost")
	kind, _ = errors.KindOf(err)
	assert.Equal(t, errors.KindRentalNotFound, kind)

	_, err = p.RecordingFormats(ctx)
	assert.True(t, errors.IsDataCorrupted(err), "truncated body")

	unauthorized, err := New(srv.URL+"/v1", WithRetries(0, 0))
	require.NoError(t, err)
	_, err = unauthorized.Lenses(ctx)
	assert.True(t, errors.IsNetwork(err), "non-success list responses are network errors")
}

func TestInvalidRecordsAreDataCorrupted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"x","focal_range":{"min":70,"max":24},"max_aperture":2.8}]`))
	}))
	t.Cleanup(srv.Close)

	_, err := newProvider(t, srv.URL).Lenses(context.Background())
	assert.True(t, errors.IsDataCorrupted(err))
}

func TestRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	p, err := New(srv.URL, WithRetries(2, time.Millisecond))
	require.NoError(t, err)

	cams, err := p.Cameras(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cams)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNotFoundIsNotRetried(t *testing.T) {
	srv, hits := catalogServer(t)
	p, err := New(srv.URL+"/v1", WithRetries(3, time.Millisecond))
	require.NoError(t, err)

	_, err = p.Lens(context.Background(), "ghost")
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, int32(1), hits.Load())
}

func TestBreakerOpens(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	p, err := New(srv.URL, WithRetries(0, 0), WithBreaker(2, time.Minute))
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := p.Lenses(ctx)
		assert.True(t, errors.IsNetwork(err))
	}
	_, err = p.Lenses(ctx)
	assert.True(t, errors.IsNetwork(err))
	assert.Contains(t, err.Error(), "unavailable")
	assert.Equal(t, int32(2), calls.Load(), "open breaker short-circuits requests")
}

func TestCanceledContext(t *testing.T) {
	srv, _ := catalogServer(t)
	p := newProvider(t, srv.URL+"/v1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Lenses(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New("not a url")
	assert.True(t, errors.IsValidationError(err))

	_, err = New("https://catalog.example.com", WithRetries(-1, 0))
	assert.True(t, errors.IsValidationError(err))

	_, err = New("https://catalog.example.com", WithBreaker(0, time.Second))
	assert.True(t, errors.IsValidationError(err))

	_, err = New("https://catalog.example.com", WithTimeout(0))
	assert.True(t, errors.IsValidationError(err))
}
