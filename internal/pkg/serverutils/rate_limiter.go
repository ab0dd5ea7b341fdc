// FILE: internal/pkg/serverutils/rate_limiter.go
package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

// RateLimiter is a fixed-window counter keyed by the authenticated tenant
// when present, else the client IP. Counters live in-process; the window
// resets when the cache entry expires.
type RateLimiter struct {
	counters *cache.Cache
	max      int
}

func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		counters: cache.New(window, 2*window),
		max:      max,
	}
}

func (rl *RateLimiter) key(ctx *fiber.Ctx) string {
	if tenantId, ok := ctx.Locals("tenant_id").(string); ok && tenantId != "" {
		return tenantId
	}
	if ip := ctx.IP(); ip != "" {
		return ip
	}
	return "unknown-key"
}

func (rl *RateLimiter) Middleware(ctx *fiber.Ctx) error {
	key := rl.key(ctx)

	count, err := rl.counters.IncrementInt(key, 1)
	if err != nil {
		// First request in this window.
		rl.counters.Set(key, 1, cache.DefaultExpiration)
		count = 1
	}

	if count > rl.max {
		return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorBody{
			Message: "Too many requests. Please try again later.",
		})
	}
	return ctx.Next()
}
