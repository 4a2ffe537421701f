package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/sport-complex/internal/config"
)

// RateLimit returns a fixed-window request limiter backed by Redis.
// Each client IP gets cfg.Limit requests per cfg.Window; the counter
// key is INCRed and given the window as TTL on first hit.  When Redis
// is nil or errors, requests pass through: availability over strict
// limiting.
func RateLimit(rdb *redis.Client, cfg config.RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Enabled || rdb == nil {
				return next(c)
			}

			window := time.Now().Unix() / int64(cfg.Window.Seconds())
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), window)

			ctx := c.Request().Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				log.Warn().Err(err).Msg("rate limit: redis unavailable, passing through")
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, cfg.Window)
			}
			if n > int64(cfg.Limit) {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"message": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
