// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It is called after
// defaults were applied.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if err := cfg.RateLimit.validate(); err != nil {
		return err
	}

	if cfg.Workers.LimiterSweepInterval <= 0 {
		return fmt.Errorf("%w: limiter sweep interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (a App) validate() error {
	if a.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if !slices.Contains([]string{EnvironmentDevelopment, EnvironmentProduction, EnvironmentTest}, a.Environment) {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, a.Environment)
	}

	if a.BcryptCost < minBcryptCost || a.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost must be between %d and %d", ErrInvalidAppConfigs, minBcryptCost, maxBcryptCost)
	}

	if a.TokenDuration < 0 || a.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: token duration and max upload size must not be negative", ErrInvalidAppConfigs)
	}

	return nil
}

func (a Adapter) validate() error {
	switch a.MediaProvider {
	case MediaProviderCloudinary:
		c := a.Cloudinary
		if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
			return fmt.Errorf("%w: cloudinary cloud name, api key and api secret are required", ErrInvalidAdapterConfigs)
		}
	case MediaProviderS3:
		if a.S3.Bucket == "" || a.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown media provider %q", ErrInvalidAdapterConfigs, a.MediaProvider)
	}

	return nil
}

func (r RateLimit) validate() error {
	switch r.Backend {
	case RateLimitBackendMemory:
	case RateLimitBackendRedis:
		if r.RedisAddress == "" {
			return fmt.Errorf("%w: redis address is required for the redis backend", ErrInvalidRateLimitConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidRateLimitConfigs, r.Backend)
	}

	for _, l := range []Limit{r.General, r.Auth} {
		if l.Requests <= 0 || l.Window <= 0 {
			return fmt.Errorf("%w: requests and window must be positive", ErrInvalidRateLimitConfigs)
		}
	}

	return nil
}
