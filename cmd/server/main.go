package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-media-keeper/internal/adapter"
	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/handler"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/metrics"
	"github.com/MKhiriev/go-media-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-media-keeper/internal/server"
	"github.com/MKhiriev/go-media-keeper/internal/service"
	"github.com/MKhiriev/go-media-keeper/internal/store"
	"github.com/MKhiriev/go-media-keeper/internal/workers"
	"github.com/MKhiriev/go-media-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("media-keeper-server")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("media_provider", cfg.Adapter.MediaProvider).
		Str("rate_limit_backend", cfg.RateLimit.Backend).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	host, err := adapter.NewMediaHost(ctx, cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating media host: %w", err)
	}

	services, err := service.NewServices(storages, host, cfg.App, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	policies, err := ratelimit.NewPolicies(ctx, cfg.RateLimit, cfg.Workers.LimiterSweepInterval, log)
	if err != nil {
		return fmt.Errorf("error creating rate limiters: %w", err)
	}
	defer policies.Close()

	handlers, err := handler.NewHandlers(services, policies, metrics.New(), cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(policies.Workers()...), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
