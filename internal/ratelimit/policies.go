// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/workers"
	"github.com/redis/go-redis/v9"
)

const (
	generalPrefix = "ratelimit:general"
	authPrefix    = "ratelimit:auth"
)

// Policies holds the limiters of the two throttling policies.
type Policies struct {
	// General applies to every request.
	General Limiter

	// Auth applies to the authentication routes on top of General.
	Auth Limiter

	workers []workers.Worker
	redis   *redis.Client
}

// NewPolicies builds both limiters on the configured backend. An unreachable
// Redis is logged but not fatal: limiter errors let requests through.
func NewPolicies(ctx context.Context, cfg config.RateLimit, sweepInterval time.Duration, logger *logger.Logger) (*Policies, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating rate limiters...")

	switch cfg.Backend {
	case config.RateLimitBackendMemory:
		general := NewMemoryLimiter(cfg.General, sweepInterval)
		auth := NewMemoryLimiter(cfg.Auth, sweepInterval)

		return &Policies{
			General: general,
			Auth:    auth,
			workers: []workers.Worker{general, auth},
		}, nil

	case config.RateLimitBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("redis is not reachable, rate limiting fails open until it is")
		}

		return &Policies{
			General: NewRedisLimiter(client, generalPrefix, cfg.General),
			Auth:    NewRedisLimiter(client, authPrefix, cfg.Auth),
			redis:   client,
		}, nil

	default:
		return nil, fmt.Errorf("unknown rate limit backend %q", cfg.Backend)
	}
}

// Workers returns background jobs the limiters need (idle key sweeping).
func (p *Policies) Workers() []workers.Worker {
	return p.workers
}

func (p *Policies) Close() error {
	if p == nil || p.redis == nil {
		return nil
	}
	return p.redis.Close()
}
