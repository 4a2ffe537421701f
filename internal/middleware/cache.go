package middleware

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/sport-complex/internal/config"
)

// bodyRecorder duplicates the response body so a 200 JSON reply can
// be stored after it has been sent.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheGET returns middleware that serves GET responses from Redis,
// keyed by request path and query.  Only 200 JSON bodies are stored.
// Intended for the reference collections (fields, slots, sport
// types); reservation and payment routes are never registered with
// it, their data must always be live.  The X-Cache header reports HIT
// or MISS.
func CacheGET(rdb *redis.Client, cfg config.CacheConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Enabled || rdb == nil || c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cfg.Prefix + ":" + c.Request().URL.RequestURI()

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			c.Response().Header().Set("X-Cache", "MISS")
			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec

			if err := next(c); err != nil {
				return err
			}
			if rec.status == http.StatusOK && rec.buf.Len() > 0 {
				if err := rdb.Set(ctx, key, rec.buf.Bytes(), cfg.TTL).Err(); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("cache: store failed")
				}
			}
			return nil
		}
	}
}
