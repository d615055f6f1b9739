package handlers

import (
	"net/http"

	"github.com/agentstation/lensmap/internal/server/response"
	"github.com/agentstation/lensmap/pkg/logging"
)

// HandleListLenses handles GET /v1/lenses with optional criteria.
func (h *Handlers) HandleListLenses(w http.ResponseWriter, r *http.Request) {
	criteria, err := ParseCriteria(r)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	lenses, err := h.catalog.Lenses(r.Context(), criteria)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, lenses)
}

// HandleGetLens handles GET /v1/lenses/{id}.
func (h *Handlers) HandleGetLens(w http.ResponseWriter, r *http.Request, id string) {
	lens, err := h.catalog.Lens(logging.WithLens(r.Context(), id), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, lens)
}

// HandleLensRentals handles GET /v1/lenses/{id}/rentals.
func (h *Handlers) HandleLensRentals(w http.ResponseWriter, r *http.Request, id string) {
	rentals, err := h.catalog.RentalsForLens(logging.WithLens(r.Context(), id), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, rentals)
}

// fail logs the error on the request logger and writes the mapped response.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Debug().Err(err).Msg("Catalog request failed")
	response.ErrorFromType(w, err)
}
