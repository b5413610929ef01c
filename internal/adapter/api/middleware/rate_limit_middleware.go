package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portfolia/internal/infrastructure/ratelimit"
	"portfolia/pkg/logger"
)

var ipLimiter = ratelimit.NewRateLimiter()

func init() {
	ipLimiter.StartCleanupRoutine()
}

// RateLimit throttles a route per client IP using the shared token buckets.
// The action names the bucket profile ("contact_submit", "send_message", or
// the default).
func RateLimit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, waitTime := ipLimiter.Allow(ip, action)
			if !allowed {
				logger.Warn("Rate limit hit: %s %s (retry in %v)", ip, action, waitTime)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(waitTime / time.Second),
				})
			}

			return next(c)
		}
	}
}
