package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLimits = config.RateLimit{
	General: config.Limit{Requests: 100, Window: 15 * time.Minute},
	Auth:    config.Limit{Requests: 5, Window: 15 * time.Minute},
}

func TestNewPolicies_Memory(t *testing.T) {
	cfg := testLimits
	cfg.Backend = config.RateLimitBackendMemory

	p, err := NewPolicies(context.Background(), cfg, time.Minute, logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, &MemoryLimiter{}, p.General)
	assert.IsType(t, &MemoryLimiter{}, p.Auth)
	assert.Len(t, p.Workers(), 2)
	assert.NoError(t, p.Close())
}

func TestNewPolicies_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testLimits
	cfg.Backend = config.RateLimitBackendRedis
	cfg.RedisAddress = mr.Addr()

	p, err := NewPolicies(context.Background(), cfg, time.Minute, logger.Nop())
	require.NoError(t, err)
	defer p.Close()

	assert.Empty(t, p.Workers())

	// policies count separately
	_, err = p.Auth.Allow(context.Background(), "ip")
	require.NoError(t, err)
	assert.True(t, mr.Exists("ratelimit:auth:ip"))
	assert.False(t, mr.Exists("ratelimit:general:ip"))
}

func TestNewPolicies_UnknownBackend(t *testing.T) {
	cfg := testLimits
	cfg.Backend = "etcd"

	_, err := NewPolicies(context.Background(), cfg, time.Minute, logger.Nop())

	assert.Error(t, err)
}
