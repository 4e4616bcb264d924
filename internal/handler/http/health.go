package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-keeper/internal/utils"
	"github.com/MKhiriev/go-media-keeper/models"
)

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{OK: true}, http.StatusOK)
}
