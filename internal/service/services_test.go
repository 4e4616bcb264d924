package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/mock"
	"github.com/MKhiriev/go-media-keeper/internal/store"
	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices_MediaServiceValidatesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		UserRepository:  mock.NewMockUserRepository(ctrl),
		MediaRepository: mock.NewMockMediaRepository(ctrl),
	}
	cfg := testAppConfig
	cfg.MaxUploadSize = 10

	services, err := NewServices(storages, mock.NewMockMediaHost(ctrl), cfg, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, services.AuthService)
	require.NotNil(t, services.UserService)

	// no host or repository call is expected for a rejected file
	_, err = services.MediaService.Upload(context.Background(), 1, models.UploadedFile{ContentType: "text/plain", Size: 1, Content: nil})
	assert.ErrorIs(t, err, ErrMediaFileMissing)
}
