package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-media-keeper/internal/adapter"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/store"
	"github.com/MKhiriev/go-media-keeper/models"
)

// cleanupTimeout bounds the compensating delete issued when the metadata of a
// freshly hosted object could not be saved.
const cleanupTimeout = 30 * time.Second

type mediaService struct {
	mediaRepository store.MediaRepository
	mediaHost       adapter.MediaHost

	logger *logger.Logger
}

func NewMediaService(mediaRepository store.MediaRepository, host adapter.MediaHost, logger *logger.Logger) MediaService {
	return &mediaService{
		mediaRepository: mediaRepository,
		mediaHost:       host,
		logger:          logger,
	}
}

func userFolder(userID int64) string {
	return fmt.Sprintf("user_%d", userID)
}

// Upload sends file to the media host inside the user's folder and records
// the hosted object. When the record cannot be saved the hosted object is
// deleted again; that cleanup is best-effort.
func (m *mediaService) Upload(ctx context.Context, userID int64, file models.UploadedFile) (models.Media, error) {
	log := logger.FromContext(ctx)

	hosted, err := m.mediaHost.Upload(ctx, userFolder(userID), file)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("file", file.Name).Msg("media host upload failed")
		return models.Media{}, fmt.Errorf("%w: %w", ErrMediaUpload, err)
	}

	media := models.Media{
		UserID:       userID,
		PublicID:     hosted.PublicID,
		SecureURL:    hosted.SecureURL,
		Format:       hosted.Format,
		ResourceType: hosted.ResourceType,
		Bytes:        hosted.Bytes,
		Width:        hosted.Width,
		Height:       hosted.Height,
		Folder:       hosted.Folder,
	}
	if file.Name != "" {
		name := file.Name
		media.OriginalName = &name
	}

	created, err := m.mediaRepository.CreateMedia(ctx, media)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("public_id", hosted.PublicID).Msg("saving media metadata failed")
		m.removeOrphan(ctx, hosted)
		return models.Media{}, fmt.Errorf("%w: %w", ErrMediaUpload, err)
	}

	return created, nil
}

func (m *mediaService) removeOrphan(ctx context.Context, hosted models.HostedObject) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := m.mediaHost.Delete(cleanupCtx, hosted.PublicID, hosted.ResourceType); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("public_id", hosted.PublicID).Msg("orphaned hosted object was not deleted")
	}
}

// List returns the user's media, newest first.
func (m *mediaService) List(ctx context.Context, userID int64) ([]models.Media, error) {
	items, err := m.mediaRepository.ListMediaByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing media of user %d: %w", userID, err)
	}
	return items, nil
}

// Get returns the media if it exists and belongs to userID. Existence is
// checked first: a missing id is [store.ErrMediaNotFound] for every caller.
func (m *mediaService) Get(ctx context.Context, userID, mediaID int64) (models.Media, error) {
	media, err := m.mediaRepository.FindMediaByID(ctx, mediaID)
	if err != nil {
		return models.Media{}, fmt.Errorf("getting media %d: %w", mediaID, err)
	}

	if media.UserID != userID {
		logger.FromContext(ctx).Warn().
			Int64("user_id", userID).
			Int64("media_id", mediaID).
			Int64("owner_id", media.UserID).
			Msg("access to foreign media denied")
		return models.Media{}, ErrMediaAccessForbidden
	}

	return media, nil
}

// Delete removes the hosted object and then its record. If the host fails
// the record is kept and [ErrMediaHostDelete] is returned; an object the
// host no longer has counts as deleted.
func (m *mediaService) Delete(ctx context.Context, userID, mediaID int64) error {
	log := logger.FromContext(ctx)

	media, err := m.Get(ctx, userID, mediaID)
	if err != nil {
		return err
	}

	err = m.mediaHost.Delete(ctx, media.PublicID, media.ResourceType)
	switch {
	case errors.Is(err, adapter.ErrHostedObjectNotFound):
		log.Info().Int64("media_id", mediaID).Str("public_id", media.PublicID).Msg("hosted object already gone")
	case err != nil:
		log.Err(err).Int64("media_id", mediaID).Str("public_id", media.PublicID).Msg("media host delete failed")
		return fmt.Errorf("%w: %w", ErrMediaHostDelete, err)
	}

	if err = m.mediaRepository.DeleteMedia(ctx, mediaID); err != nil {
		log.Err(err).Int64("media_id", mediaID).Msg("deleting media record failed")
		return fmt.Errorf("deleting media %d: %w", mediaID, err)
	}

	return nil
}
