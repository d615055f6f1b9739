// Package server serves the lens catalog as a read-only JSON API. The
// collection layout matches what the remote catalog provider consumes.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/lensmap/internal/server/handlers"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	catalog handlers.Catalog
	logger  *zerolog.Logger
	config  Config
	version string
}

// New creates a server over the catalog.
func New(catalog handlers.Catalog, cfg Config, logger *zerolog.Logger, version string) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.PathPrefix = strings.TrimRight(cfg.PathPrefix, "/")
	return &Server{
		catalog: catalog,
		logger:  logger,
		config:  cfg,
		version: version,
	}, nil
}

// Handler returns the router with the middleware chain applied. Background
// work started for the handler stops when ctx is done.
func (s *Server) Handler(ctx context.Context) http.Handler {
	return s.setupRouter(ctx)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(ctx),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("addr", ln.Addr().String()).
			Str("prefix", s.config.PathPrefix).
			Msg("Catalog API listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutting down catalog API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
