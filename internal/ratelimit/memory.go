// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per key. The bucket holds up to
// limit tokens and refills at limit per window.
//
// Idle keys are evicted by [MemoryLimiter.Run], which makes it a
// [workers.Worker].
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	every  rate.Limit
	burst  int
	window time.Duration

	sweepInterval time.Duration
	now           func() time.Time
}

func NewMemoryLimiter(limit config.Limit, sweepInterval time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		visitors:      make(map[string]*visitor),
		every:         rate.Every(limit.Window / time.Duration(limit.Requests)),
		burst:         limit.Requests,
		window:        limit.Window,
		sweepInterval: sweepInterval,
		now:           time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.every, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	if v.limiter.AllowN(now, 1) {
		return Decision{
			Allowed:   true,
			Limit:     l.burst,
			Remaining: max(int(v.limiter.TokensAt(now)), 0),
		}, nil
	}

	reservation := v.limiter.ReserveN(now, 1)
	retryAfter := reservation.DelayFrom(now)
	reservation.CancelAt(now)

	return Decision{
		Allowed:    false,
		Limit:      l.burst,
		RetryAfter: retryAfter,
	}, nil
}

// Run evicts keys idle for longer than a full window until ctx is done.
// Their buckets would be full again anyway.
func (l *MemoryLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(l.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep(l.now())
		}
	}
}

func (l *MemoryLimiter) sweep(now time.Time) int {
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
			removed++
		}
	}

	return removed
}

func (l *MemoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
