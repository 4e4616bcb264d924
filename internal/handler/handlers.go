// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/handler/http"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/metrics"
	"github.com/MKhiriev/go-media-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-media-keeper/internal/service"
	"github.com/MKhiriev/go-media-keeper/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. Rate limiting is switched off in
// the test environment and when policies is nil.
func NewHandlers(
	services *service.Services,
	policies *ratelimit.Policies,
	m *metrics.Metrics,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	var limiters http.Limiters
	if policies != nil && !cfg.App.IsTest() {
		limiters = http.Limiters{General: policies.General, Auth: policies.Auth}
	}

	settings := http.Settings{
		MaxUploadSize:      cfg.App.MaxUploadSize,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Production:         cfg.App.IsProduction(),
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validators.NewRequestValidator(), limiters, m, settings, logger),
	}, nil
}
