// Package ratelimit throttles requests per client key.
//
// Two [Limiter] backends are provided: [MemoryLimiter], a per-process token
// bucket built on golang.org/x/time/rate, and [RedisLimiter], a fixed window
// counter shared by every instance pointing at the same Redis.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of a single [Limiter.Allow] call.
type Decision struct {
	Allowed bool

	// Limit is the number of requests allowed per window.
	Limit int

	// Remaining is how many more requests the key may make right now.
	Remaining int

	// RetryAfter is set when the request was rejected.
	RetryAfter time.Duration
}

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
