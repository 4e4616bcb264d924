// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external media host that stores
// uploaded file bytes.
//
// The primary abstraction is [MediaHost], which decouples the service layer
// from the concrete provider. Two implementations ship with the package: the
// Cloudinary REST API ([NewCloudinaryHost]) and S3-compatible object storage
// ([NewS3Host]). [NewMediaHost] picks one from configuration.
//
// Provider failures are reported with the sentinel values from errors.go so
// that callers can use [errors.Is] regardless of the provider in use.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-media-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/media_host_mock.go -package=mock

// MediaHost stores and removes file bytes at an external provider.
type MediaHost interface {
	// Upload stores file inside folder and returns the provider's description
	// of the new object.
	Upload(ctx context.Context, folder string, file models.UploadedFile) (models.HostedObject, error)

	// Delete removes the object identified by publicID. resourceType is the
	// value reported by Upload. A missing object yields [ErrHostedObjectNotFound].
	Delete(ctx context.Context, publicID, resourceType string) error
}
