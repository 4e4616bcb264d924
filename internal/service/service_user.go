package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-media-keeper/internal/adapter"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/store"
	"github.com/MKhiriev/go-media-keeper/internal/utils"
	"github.com/MKhiriev/go-media-keeper/models"
)

type userService struct {
	userRepository  store.UserRepository
	mediaRepository store.MediaRepository
	mediaHost       adapter.MediaHost

	bcryptCost int

	logger *logger.Logger
}

func NewUserService(storages *store.Storages, host adapter.MediaHost, bcryptCost int, logger *logger.Logger) UserService {
	return &userService{
		userRepository:  storages.UserRepository,
		mediaRepository: storages.MediaRepository,
		mediaHost:       host,
		bcryptCost:      bcryptCost,
		logger:          logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (u *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("getting user %d: %w", id, err)
	}
	return user, nil
}

// UpdateUser applies a partial profile update. An empty update returns the
// stored user unchanged.
func (u *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	user, err := u.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("updating user %d: %w", id, err)
	}
	return user, nil
}

// ChangePassword replaces the password after checking the current one.
func (u *userService) ChangePassword(ctx context.Context, id int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("getting user %d: %w", id, err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		log.Info().Int64("user_id", id).Msg("password change with wrong current password")
		return ErrWrongCurrentPassword
	}

	hash, err := utils.HashPassword(req.NewPassword, u.bcryptCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = u.userRepository.UpdatePassword(ctx, id, hash); err != nil {
		log.Err(err).Int64("user_id", id).Msg("password update failed")
		return fmt.Errorf("updating password of user %d: %w", id, err)
	}

	return nil
}

// DeleteUser removes the user together with their media records. Hosted
// objects are deleted first on a best-effort basis: failures are logged and
// do not stop the deletion.
func (u *userService) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := u.userRepository.FindUserByID(ctx, id); err != nil {
		return fmt.Errorf("getting user %d: %w", id, err)
	}

	items, err := u.mediaRepository.ListMediaByUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("user_id", id).Msg("listing media before user deletion failed, hosted objects are left behind")
	}
	for _, item := range items {
		err := u.mediaHost.Delete(ctx, item.PublicID, item.ResourceType)
		if err != nil && !errors.Is(err, adapter.ErrHostedObjectNotFound) {
			log.Warn().Err(err).
				Int64("user_id", id).
				Int64("media_id", item.ID).
				Str("public_id", item.PublicID).
				Msg("hosted object was not deleted")
		}
	}

	if err = u.userRepository.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("user_id", id).Msg("user deletion failed")
		return fmt.Errorf("deleting user %d: %w", id, err)
	}

	return nil
}
