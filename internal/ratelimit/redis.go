package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests per key in fixed windows. The window starts
// with the first request of a key and lasts limit.Window.
type RedisLimiter struct {
	client redis.Cmdable
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client redis.Cmdable, prefix string, limit config.Limit) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit.Requests,
		window: limit.Window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("incr %s: %w", redisKey, err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("expire %s: %w", redisKey, err)
		}
	}

	decision := Decision{
		Allowed:   count <= int64(l.limit),
		Limit:     l.limit,
		Remaining: max(l.limit-int(count), 0),
	}
	if decision.Allowed {
		return decision, nil
	}

	ttl, err := l.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return decision, fmt.Errorf("pttl %s: %w", redisKey, err)
	}
	if ttl < 0 {
		// the key lost its expiry (EXPIRE failed earlier); start a fresh window
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return decision, fmt.Errorf("expire %s: %w", redisKey, err)
		}
		ttl = l.window
	}
	decision.RetryAfter = ttl

	return decision, nil
}
