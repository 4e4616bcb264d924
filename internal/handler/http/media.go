// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/service"
	"github.com/MKhiriev/go-media-keeper/internal/utils"
	"github.com/MKhiriev/go-media-keeper/models"
)

const (
	uploadFormField = "file"

	// multipartOverhead is allowed on top of the file size for boundaries
	// and part headers.
	multipartOverhead = 1 << 20

	// multipartMemory is kept in memory while parsing, the rest spills to
	// temporary files.
	multipartMemory = 8 << 20

	sniffLength = 512
)

func (h *Handler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if h.settings.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.settings.MaxUploadSize+multipartOverhead)
	}

	file, header, err := h.formFile(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer file.Close()
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	contentType, err := detectContentType(file, header)
	if err != nil {
		writeError(w, r, err)
		return
	}

	media, err := h.services.MediaService.Upload(r.Context(), identity.UserID, models.UploadedFile{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.metrics.AddUploadedBytes(media.Bytes)
	logger.FromRequest(r).Info().
		Int64("user_id", identity.UserID).
		Int64("media_id", media.ID).
		Str("public_id", media.PublicID).
		Msg("media uploaded")

	_, _ = utils.WriteJSON(w, media, http.StatusCreated)
}

// formFile reads the single uploaded file of the request. A body over the
// size cap is reported as [service.ErrMediaTooLarge], anything else without a
// usable file part as [service.ErrMediaFileMissing].
func (h *Handler) formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, fmt.Errorf("%w: %w", service.ErrMediaTooLarge, err)
		}
		return nil, nil, fmt.Errorf("%w: %w", service.ErrMediaFileMissing, err)
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", service.ErrMediaFileMissing, err)
	}

	return file, header, nil
}

// detectContentType trusts the part's Content-Type unless it is missing or
// generic, then falls back to the file extension and finally to sniffing the
// first bytes of the content.
func detectContentType(file multipart.File, header *multipart.FileHeader) (string, error) {
	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct, nil
	}

	if ct := mime.TypeByExtension(filepath.Ext(header.Filename)); ct != "" {
		return ct, nil
	}

	buf := make([]byte, sniffLength)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading uploaded file: %w", err)
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding uploaded file: %w", err)
	}

	return http.DetectContentType(buf[:n]), nil
}

func (h *Handler) listMedia(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.MediaService.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Media{}
	}

	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getMedia(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	media, err := h.services.MediaService.Get(r.Context(), identity.UserID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, media, http.StatusOK)
}

func (h *Handler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MediaService.Delete(r.Context(), identity.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
