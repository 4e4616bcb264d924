package config

import "time"

const (
	defaultEnvironment          = EnvironmentDevelopment
	defaultBcryptCost           = 10
	defaultMaxUploadSize        = 10 << 20
	defaultHTTPAddress          = ":3000"
	defaultRequestTimeout       = 30 * time.Second
	defaultShutdownTimeout      = 10 * time.Second
	defaultMaxOpenConns         = 10
	defaultMediaProvider        = MediaProviderCloudinary
	defaultAdapterTimeout       = 60 * time.Second
	defaultCloudinaryBaseURL    = "https://api.cloudinary.com"
	defaultRateLimitBackend     = RateLimitBackendMemory
	defaultGeneralRequests      = 100
	defaultAuthRequests         = 5
	defaultRateLimitWindow      = 15 * time.Minute
	defaultLimiterSweepInterval = time.Minute
)

// applyDefaults fills zero-valued settings that have a sensible default.
// Secrets and the DSN have no defaults.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.Environment, defaultEnvironment)
	setDefault(&cfg.App.BcryptCost, defaultBcryptCost)
	setDefault(&cfg.App.MaxUploadSize, defaultMaxUploadSize)
	if cfg.App.Environment == EnvironmentDevelopment {
		setDefault(&cfg.App.LogLevel, "debug")
	}
	setDefault(&cfg.App.LogLevel, "info")

	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, defaultRequestTimeout)
	setDefault(&cfg.Server.ShutdownTimeout, defaultShutdownTimeout)
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}

	setDefault(&cfg.Storage.DB.MaxOpenConns, defaultMaxOpenConns)

	setDefault(&cfg.Adapter.MediaProvider, defaultMediaProvider)
	setDefault(&cfg.Adapter.RequestTimeout, defaultAdapterTimeout)
	setDefault(&cfg.Adapter.Cloudinary.BaseURL, defaultCloudinaryBaseURL)

	setDefault(&cfg.RateLimit.Backend, defaultRateLimitBackend)
	setDefault(&cfg.RateLimit.General.Requests, defaultGeneralRequests)
	setDefault(&cfg.RateLimit.General.Window, defaultRateLimitWindow)
	setDefault(&cfg.RateLimit.Auth.Requests, defaultAuthRequests)
	setDefault(&cfg.RateLimit.Auth.Window, defaultRateLimitWindow)

	setDefault(&cfg.Workers.LimiterSweepInterval, defaultLimiterSweepInterval)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
