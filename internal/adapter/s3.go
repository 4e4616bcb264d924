// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

type s3Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type s3Deleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Host struct {
	uploader s3Uploader
	deleter  s3Deleter

	bucket  string
	baseURL string

	logger *logger.Logger
}

// NewS3Host constructs a [MediaHost] storing objects in an S3 bucket.
// Static credentials are used when configured, the default AWS chain otherwise.
func NewS3Host(ctx context.Context, cfg config.S3, logger *logger.Logger) (MediaHost, error) {
	opts := []func(*awscfg.LoadOptions) error{awscfg.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsConfig, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &s3Host{
		uploader: manager.NewUploader(client),
		deleter:  client,
		bucket:   cfg.Bucket,
		baseURL:  objectBaseURL(cfg),
		logger:   logger,
	}, nil
}

// objectBaseURL is the prefix the object key is appended to.
func objectBaseURL(cfg config.S3) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "" && cfg.UsePathStyle:
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	case cfg.Endpoint != "":
		return cfg.Endpoint
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

// Upload implements [MediaHost]. Images are buffered so their dimensions can
// be read from the header before the bytes are sent.
func (s *s3Host) Upload(ctx context.Context, folder string, file models.UploadedFile) (models.HostedObject, error) {
	log := logger.FromContext(ctx)

	key := objectKey(folder, file.Name)
	resourceType := resourceTypeFor(file.ContentType)

	body := file.Content
	var width, height *int
	if resourceType == "image" {
		data, err := io.ReadAll(file.Content)
		if err != nil {
			return models.HostedObject{}, fmt.Errorf("%w: read upload: %w", ErrMediaHostRequest, err)
		}
		width, height = imageDimensions(data)
		body = bytes.NewReader(data)
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(file.ContentType),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3Host.Upload").Str("key", key).Msg("put object failed")
		return models.HostedObject{}, fmt.Errorf("%w: %w", ErrMediaHostRequest, err)
	}

	return models.HostedObject{
		PublicID:     key,
		SecureURL:    s.baseURL + "/" + escapeKey(key),
		Format:       formatFor(file.Name, file.ContentType),
		ResourceType: resourceType,
		Bytes:        file.Size,
		Width:        width,
		Height:       height,
		Folder:       optionalString(folder),
	}, nil
}

// Delete implements [MediaHost]. S3 deletes are idempotent, so a missing key
// is only reported when the service says so explicitly.
func (s *s3Host) Delete(ctx context.Context, publicID, _ string) error {
	_, err := s.deleter.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err == nil {
		return nil
	}

	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return ErrHostedObjectNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", "*s3Host.Delete").Str("key", publicID).Msg("delete object failed")
	return fmt.Errorf("%w: %w", ErrMediaHostRequest, err)
}

func objectKey(folder, name string) string {
	key := uuid.NewString() + strings.ToLower(path.Ext(name))
	if folder == "" {
		return key
	}
	return folder + "/" + key
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func imageDimensions(data []byte) (*int, *int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil
	}
	return optionalInt(cfg.Width), optionalInt(cfg.Height)
}
