package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/service"
	"github.com/MKhiriev/go-media-keeper/internal/store"
	"github.com/MKhiriev/go-media-keeper/internal/utils"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins. Errors that match
// nothing are reported as a bare 500 so storage and host details never reach
// the client.
var errorStatuses = []errorStatus{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, msgUnauthorized},
	{ErrMissingIdentity, http.StatusUnauthorized, msgUnauthorized},
	{service.ErrWrongCurrentPassword, http.StatusBadRequest, "current password is incorrect"},
	{service.ErrMediaFileMissing, http.StatusBadRequest, "no file uploaded"},
	{service.ErrUnsupportedMediaType, http.StatusBadRequest, "unsupported file type"},
	{service.ErrMediaTooLarge, http.StatusBadRequest, "file is too large"},
	{ErrInvalidID, http.StatusBadRequest, "invalid id"},
	{ErrInvalidJSON, http.StatusBadRequest, "invalid JSON body"},
	{service.ErrMediaAccessForbidden, http.StatusForbidden, "forbidden"},
	{service.ErrMediaHostDelete, http.StatusBadGateway, "error deleting file from media host"},
	{service.ErrMediaUpload, http.StatusInternalServerError, "error uploading file"},
	{store.ErrEmailAlreadyExists, http.StatusConflict, "email already in use"},
	{store.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{store.ErrMediaNotFound, http.StatusNotFound, "media not found"},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, msgInternal
}

// writeError logs err and answers with the status and public message it maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
