package http

import (
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/metrics"
	"github.com/MKhiriev/go-media-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-media-keeper/internal/service"
	"github.com/MKhiriev/go-media-keeper/internal/validators"
)

// Limiters are the rate limiting policies of the router. A nil limiter lets
// every request through.
type Limiters struct {
	General ratelimit.Limiter
	Auth    ratelimit.Limiter
}

// Settings are the transport-level knobs of the router.
type Settings struct {
	// MaxUploadSize caps the media file size in bytes. Zero disables the cap.
	MaxUploadSize int64

	CORSAllowedOrigins []string

	// Production enables HSTS and the other checks unrolled/secure skips in
	// development.
	Production bool
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	limiters  Limiters
	metrics   *metrics.Metrics
	settings  Settings

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	validator validators.Validator,
	limiters Limiters,
	m *metrics.Metrics,
	settings Settings,
	logger *logger.Logger,
) *Handler {
	if m == nil {
		m = metrics.New()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		limiters:  limiters,
		metrics:   m,
		settings:  settings,
		logger:    logger,
	}
}
