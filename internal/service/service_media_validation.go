package service

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/MKhiriev/go-media-keeper/models"
)

// allowedMediaTypes lists the MIME types accepted for upload.
var allowedMediaTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"video/mp4":       {},
	"video/mpeg":      {},
	"video/quicktime": {},
}

// MediaValidationService rejects uploads that must never reach the media
// host: missing content, oversized files and types outside the allow-list.
type MediaValidationService struct {
	inner         MediaService
	maxUploadSize int64
}

func NewMediaValidationService(maxUploadSize int64) MediaServiceWrapper {
	return &MediaValidationService{maxUploadSize: maxUploadSize}
}

func (v *MediaValidationService) Upload(ctx context.Context, userID int64, file models.UploadedFile) (models.Media, error) {
	if file.Content == nil || file.Size == 0 {
		return models.Media{}, ErrMediaFileMissing
	}
	if v.maxUploadSize > 0 && file.Size > v.maxUploadSize {
		return models.Media{}, fmt.Errorf("%w: %d bytes, at most %d allowed", ErrMediaTooLarge, file.Size, v.maxUploadSize)
	}

	contentType, ok := normalizeMediaType(file.ContentType)
	if !ok {
		return models.Media{}, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, file.ContentType)
	}
	file.ContentType = contentType

	return v.inner.Upload(ctx, userID, file)
}

func (v *MediaValidationService) List(ctx context.Context, userID int64) ([]models.Media, error) {
	return v.inner.List(ctx, userID)
}

func (v *MediaValidationService) Get(ctx context.Context, userID, mediaID int64) (models.Media, error) {
	return v.inner.Get(ctx, userID, mediaID)
}

func (v *MediaValidationService) Delete(ctx context.Context, userID, mediaID int64) error {
	return v.inner.Delete(ctx, userID, mediaID)
}

func (v *MediaValidationService) Wrap(wrapped MediaService) MediaService {
	v.inner = wrapped
	return v
}

// normalizeMediaType strips parameters and case from contentType and reports
// whether the result is allowed.
func normalizeMediaType(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	mediaType = strings.ToLower(mediaType)

	_, ok := allowedMediaTypes[mediaType]
	return mediaType, ok
}
