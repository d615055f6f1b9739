package handlers

import (
	"net/http"

	"github.com/agentstation/lensmap/internal/server/response"
)

// HandleListCameras handles GET /v1/cameras.
func (h *Handlers) HandleListCameras(w http.ResponseWriter, r *http.Request) {
	cameras, err := h.catalog.Cameras(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, cameras)
}

// HandleGetCamera handles GET /v1/cameras/{id}.
func (h *Handlers) HandleGetCamera(w http.ResponseWriter, r *http.Request, id string) {
	camera, err := h.catalog.Camera(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, camera)
}

// HandleListFormats handles GET /v1/formats.
func (h *Handlers) HandleListFormats(w http.ResponseWriter, r *http.Request) {
	formats, err := h.catalog.RecordingFormats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, formats)
}
