package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/lensmap/internal/server/response"
)

// HandleHealth handles GET /health (liveness).
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "lensmap-api",
		"version": h.version,
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// HandleReady handles GET /v1/ready. The catalog is ready once its lenses
// can be fetched.
func (h *Handlers) HandleReady(w http.ResponseWriter, r *http.Request) {
	lenses, err := h.catalog.Lenses(r.Context(), emptyCriteria)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Catalog not ready")
		response.ServiceUnavailable(w, "Catalog not available")
		return
	}

	response.OK(w, map[string]any{
		"status": "ready",
		"lenses": len(lenses),
	})
}
