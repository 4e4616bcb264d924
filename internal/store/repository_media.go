package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/jackc/pgerrcode"
)

type mediaRepository struct {
	*DB
	logger *logger.Logger
}

func NewMediaRepository(db *DB, logger *logger.Logger) MediaRepository {
	logger.Debug().Msg("creating media repository")
	return &mediaRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateMedia stores the metadata of an uploaded object. A foreign key
// violation means the owner no longer exists and yields [ErrUserNotFound].
func (m *mediaRepository) CreateMedia(ctx context.Context, media models.Media) (models.Media, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateMediaQuery(media)
	if err != nil {
		log.Err(err).Str("func", "mediaRepository.CreateMedia").Msg("failed to build query")
		return models.Media{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanMedia(m.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "mediaRepository.CreateMedia").
			Int64("user_id", media.UserID).
			Str("public_id", media.PublicID).
			Msg("failed to insert media")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Media{}, ErrUserNotFound
		}
		return models.Media{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (m *mediaRepository) FindMediaByID(ctx context.Context, id int64) (models.Media, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindMediaQuery(id)
	if err != nil {
		return models.Media{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	media, err := scanMedia(m.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Media{}, ErrMediaNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "mediaRepository.FindMediaByID").Int64("media_id", id).Msg("failed to find media")
		return models.Media{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return media, nil
}

func (m *mediaRepository) ListMediaByUser(ctx context.Context, userID int64) ([]models.Media, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMediaByUserQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "mediaRepository.ListMediaByUser").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Media, 0)
	for i := 0; rows.Next(); i++ {
		media, err := scanMedia(rows)
		if err != nil {
			log.Err(err).
				Str("func", "mediaRepository.ListMediaByUser").
				Int64("user_id", userID).
				Int("iteration", i).
				Msg("failed to scan media row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, media)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "mediaRepository.ListMediaByUser").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (m *mediaRepository) DeleteMedia(ctx context.Context, id int64) error {
	query, args, err := buildDeleteQuery(models.Media{}.TableName(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execAffectingOne(ctx, m.DB, "mediaRepository.DeleteMedia", ErrMediaNotFound, query, args)
}

func scanMedia(row rowScanner) (models.Media, error) {
	var media models.Media
	err := row.Scan(
		&media.ID,
		&media.UserID,
		&media.PublicID,
		&media.SecureURL,
		&media.Format,
		&media.ResourceType,
		&media.Bytes,
		&media.Width,
		&media.Height,
		&media.OriginalName,
		&media.Folder,
		&media.CreatedAt,
	)
	return media, err
}
