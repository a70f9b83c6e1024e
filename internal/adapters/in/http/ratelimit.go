package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const limiterIdleExpiry = 10 * time.Minute

// ClientRateLimiter hands out one token bucket per client IP. Buckets of
// clients that stay quiet for limiterIdleExpiry are dropped.
type ClientRateLimiter struct {
	limiters *cache.Cache
	r        rate.Limit
	b        int
}

// NewClientRateLimiter creates a limiter allowing perSecond requests with
// the given burst for each client.
func NewClientRateLimiter(perSecond float64, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: cache.New(limiterIdleExpiry, 2*limiterIdleExpiry),
		r:        rate.Limit(perSecond),
		b:        burst,
	}
}

// Allow reports whether the client may issue one more request now.
func (l *ClientRateLimiter) Allow(client string) bool {
	if v, found := l.limiters.Get(client); found {
		limiter := v.(*rate.Limiter)
		// touch to push the expiry
		l.limiters.SetDefault(client, limiter)
		return limiter.Allow()
	}

	limiter := rate.NewLimiter(l.r, l.b)
	if err := l.limiters.Add(client, limiter, cache.DefaultExpiration); err != nil {
		// lost the race with a concurrent request from the same client
		if v, found := l.limiters.Get(client); found {
			limiter = v.(*rate.Limiter)
		}
	}
	return limiter.Allow()
}

// RateLimit rejects requests over the per-client budget with 429. A
// non-positive rate disables limiting.
func RateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if burst < 1 {
		burst = 1
	}

	limiter := NewClientRateLimiter(perSecond, burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
