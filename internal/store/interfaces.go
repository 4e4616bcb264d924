package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-media-keeper/models"
)

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser applies the non-nil fields of update and returns the stored row.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// DeleteUser removes the user. Their media rows go with it (ON DELETE CASCADE).
	DeleteUser(ctx context.Context, id int64) error
}

// MediaRepository persists media metadata in the "media" table.
type MediaRepository interface {
	CreateMedia(ctx context.Context, media models.Media) (models.Media, error)
	FindMediaByID(ctx context.Context, id int64) (models.Media, error)
	// ListMediaByUser returns the user's media, newest first.
	ListMediaByUser(ctx context.Context, userID int64) ([]models.Media, error)
	DeleteMedia(ctx context.Context, id int64) error
}
