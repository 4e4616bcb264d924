package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=MediaServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-media-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	ChangePassword(ctx context.Context, id int64, req models.ChangePasswordRequest) error
	DeleteUser(ctx context.Context, id int64) error
}

// MediaService manages media owned by the user identified by userID.
type MediaService interface {
	Upload(ctx context.Context, userID int64, file models.UploadedFile) (models.Media, error)
	List(ctx context.Context, userID int64) ([]models.Media, error)
	Get(ctx context.Context, userID, mediaID int64) (models.Media, error)
	Delete(ctx context.Context, userID, mediaID int64) error
}

// MediaServiceWrapper defines middleware composition for MediaService.
// Implementations wrap an existing MediaService to add behavior such as
// validating.
type MediaServiceWrapper interface {
	Wrap(MediaService) MediaService // returns a decorated MediaService applying additional behavior
}
