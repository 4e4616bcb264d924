package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-keeper/internal/utils"
)

// notFound answers unknown routes, and known routes called with a method
// they do not handle, with the same 404 JSON body, so route existence is not
// revealed by a 405.
func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, msgNotFound, http.StatusNotFound)
}
