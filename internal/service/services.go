// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-media-keeper/internal/adapter"
	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/store"
)

type Services struct {
	AuthService  AuthService
	UserService  UserService
	MediaService MediaService
}

func NewServices(storages *store.Storages, host adapter.MediaHost, cfg config.App, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	mediaService := NewMediaValidationService(cfg.MaxUploadSize).
		Wrap(NewMediaService(storages.MediaRepository, host, logger))

	return &Services{
		AuthService:  authService,
		UserService:  NewUserService(storages, host, cfg.BcryptCost, logger),
		MediaService: mediaService,
	}, nil
}
