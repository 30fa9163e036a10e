package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Limiter counters live in process memory and reset on restart. That is
// fine: these guard against abuse, they are not quota accounting.

// AuthRateLimiter caps signup/login attempts, successes included, at 10 per
// 15 minutes per client address.
func AuthRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:                    10,
		Expiration:             15 * time.Minute,
		LimiterMiddleware:      limiter.SlidingWindow{},
		SkipSuccessfulRequests: false,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return JsonResponse(c, fiber.StatusTooManyRequests, false, "Too many login attempts. Please try again later.", nil)
		},
	})
}

// ComplaintRateLimiter caps complaint submissions at 10 per hour per client
// address.
func ComplaintRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               10,
		Expiration:        time.Hour,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return JsonResponse(c, fiber.StatusTooManyRequests, false, "Too many complaints. Please try again later.", nil)
		},
	})
}
