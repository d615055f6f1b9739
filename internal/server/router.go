package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/agentstation/lensmap/internal/server/handlers"
	"github.com/agentstation/lensmap/internal/server/middleware"
	"github.com/agentstation/lensmap/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	h := handlers.New(s.catalog, s.logger, s.version)
	s.registerRoutes(mux, h)
	return s.applyMiddleware(ctx, mux)
}

// subHandler serves a sub-collection of a record, such as
// /lenses/{id}/rentals.
type subHandler func(w http.ResponseWriter, r *http.Request, id string)

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/ready", h.HandleReady)

	mux.HandleFunc(prefix+"/lenses", h.HandleListLenses)
	mux.HandleFunc(prefix+"/lenses/", s.records(prefix+"/lenses/", h.HandleGetLens, map[string]subHandler{
		"rentals": h.HandleLensRentals,
	}))

	mux.HandleFunc(prefix+"/cameras", h.HandleListCameras)
	mux.HandleFunc(prefix+"/cameras/", s.records(prefix+"/cameras/", h.HandleGetCamera, nil))

	mux.HandleFunc(prefix+"/formats", h.HandleListFormats)

	mux.HandleFunc(prefix+"/rentals", h.HandleListRentals)
	mux.HandleFunc(prefix+"/rentals/", s.records(prefix+"/rentals/", h.HandleGetRental, map[string]subHandler{
		"lenses":  h.HandleRentalLenses,
		"cameras": h.HandleRentalCameras,
	}))
}

// records routes <base>{id} to get and <base>{id}/{name} to subs.
func (s *Server) records(base string, get subHandler, subs map[string]subHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(strings.TrimPrefix(r.URL.Path, base))
		switch len(parts) {
		case 1:
			get(w, r, parts[0])
			return
		case 2:
			if sub, ok := subs[parts[1]]; ok {
				sub(w, r, parts[0])
				return
			}
		}
		response.NotFound(w, "Not found", "No route for "+r.URL.Path)
	}
}

// applyMiddleware wraps handler with the middleware chain.
func (s *Server) applyMiddleware(ctx context.Context, handler http.Handler) http.Handler {
	cfg := s.config
	chain := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.RequestID,
		middleware.Logger(s.logger),
	}

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		corsConfig.AllowedOrigins = cfg.CORSOrigins
		chain = append(chain, middleware.CORS(corsConfig))
	}

	chain = append(chain, middleware.ReadOnly)

	if cfg.RateLimit > 0 {
		chain = append(chain, middleware.RateLimit(middleware.NewRateLimiter(ctx, cfg.RateLimit, s.logger)))
	}

	if cfg.AuthEnabled {
		authConfig := middleware.DefaultAuthConfig()
		authConfig.Enabled = true
		authConfig.APIKey = cfg.APIKey
		if cfg.AuthHeader != "" {
			authConfig.HeaderName = cfg.AuthHeader
		}
		authConfig.PublicPaths = append(authConfig.PublicPaths, cfg.PathPrefix+"/health")
		chain = append(chain, middleware.Auth(authConfig, s.logger))
	}

	return middleware.Chain(chain...)(handler)
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
