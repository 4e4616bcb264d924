package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
)

// NewMediaHost builds the provider selected by cfg.MediaProvider.
func NewMediaHost(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (MediaHost, error) {
	logger.Info().Str("provider", cfg.MediaProvider).Msg("creating media host...")

	switch cfg.MediaProvider {
	case config.MediaProviderCloudinary:
		return NewCloudinaryHost(cfg, logger)
	case config.MediaProviderS3:
		return NewS3Host(ctx, cfg.S3, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMediaProvider, cfg.MediaProvider)
	}
}
