package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-media-keeper/internal/utils"
)

const (
	policyGeneral = "general"
	policyAuth    = "auth"
)

// rateLimit rejects requests over the limiter's budget with 429. Clients are
// keyed by IP, as resolved by chi's RealIP middleware. A limiter error lets
// the request through.
func (h *Handler) rateLimit(policy string, limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := limiter.Allow(r.Context(), clientKey(r))
			if err != nil {
				logger.FromRequest(r).Err(err).Str("policy", policy).Msg("rate limiter unavailable, request let through")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(decision)))
				h.metrics.IncRateLimited(policy)
				logger.FromRequest(r).Warn().Str("policy", policy).Str("client", clientKey(r)).Msg("rate limit exceeded")

				utils.WriteError(w, msgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfterSeconds(d ratelimit.Decision) int {
	seconds := int(math.Ceil(d.RetryAfter.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}
