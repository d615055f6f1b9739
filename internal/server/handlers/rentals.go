package handlers

import (
	"net/http"

	"github.com/agentstation/lensmap/internal/server/response"
	"github.com/agentstation/lensmap/pkg/logging"
)

// HandleListRentals handles GET /v1/rentals.
func (h *Handlers) HandleListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.catalog.Rentals(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, rentals)
}

// HandleGetRental handles GET /v1/rentals/{id}.
func (h *Handlers) HandleGetRental(w http.ResponseWriter, r *http.Request, id string) {
	rental, err := h.catalog.Rental(logging.WithRental(r.Context(), id), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, rental)
}

// HandleRentalLenses handles GET /v1/rentals/{id}/lenses.
func (h *Handlers) HandleRentalLenses(w http.ResponseWriter, r *http.Request, id string) {
	lenses, err := h.catalog.LensesForRental(logging.WithRental(r.Context(), id), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, lenses)
}

// HandleRentalCameras handles GET /v1/rentals/{id}/cameras.
func (h *Handlers) HandleRentalCameras(w http.ResponseWriter, r *http.Request, id string) {
	cameras, err := h.catalog.CamerasForRental(logging.WithRental(r.Context(), id), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, cameras)
}
