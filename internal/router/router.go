// Package router registers the HTTP routes.  Reads are public so the
// admin client can browse in development; every mutation sits behind
// JWT authentication and the admin role.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/sport-complex/internal/config"
	"github.com/iliyamo/sport-complex/internal/handler"
	"github.com/iliyamo/sport-complex/internal/middleware"
	"github.com/iliyamo/sport-complex/internal/model"
)

// Handlers bundles everything RegisterAPI needs.
type Handlers struct {
	Auth         *handler.AuthHandler
	Fields       *handler.FieldHandler
	Courts       *handler.CourtHandler
	SportTypes   *handler.SportTypeHandler
	TimeSlots    *handler.TimeSlotHandler
	Users        *handler.UserHandler
	Reservations *handler.ReservationHandler
	Payments     *handler.PaymentSpecialHandler
}

// RegisterHealth registers the unauthenticated health check.
func RegisterHealth(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the /api surface.  rdb may be nil; rate
// limiting and response caching then switch off.
func RegisterAPI(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	api := e.Group("/api")
	api.Use(middleware.RateLimit(rdb, config.LoadRateLimitConfig()))

	api.POST("/auth/login", h.Auth.Login)

	admin := []echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	}
	// Reference collections change rarely; their public reads go
	// through the response cache.  Booking and payment reads stay
	// live.
	cached := middleware.CacheGET(rdb, config.LoadCacheConfig())

	api.GET("/fields", h.Fields.List, cached)
	api.GET("/fields/:id", h.Fields.Get, cached)
	api.POST("/fields", h.Fields.Create, admin...)
	api.PATCH("/fields/:id", h.Fields.Update, admin...)
	api.DELETE("/fields/:id", h.Fields.Delete, admin...)

	api.GET("/courts", h.Courts.List, cached)
	api.GET("/courts/:id", h.Courts.Get, cached)
	api.POST("/courts", h.Courts.Create, admin...)
	api.PATCH("/courts/:id", h.Courts.Update, admin...)
	api.DELETE("/courts/:id", h.Courts.Delete, admin...)

	api.GET("/type-sports", h.SportTypes.List, cached)
	api.GET("/type-sports/:id", h.SportTypes.Get, cached)
	api.POST("/type-sports", h.SportTypes.Create, admin...)
	api.PATCH("/type-sports/:id", h.SportTypes.Update, admin...)
	api.DELETE("/type-sports/:id", h.SportTypes.Delete, admin...)

	api.GET("/time-slots", h.TimeSlots.List, cached)
	api.GET("/time-slots/:id", h.TimeSlots.Get, cached)
	api.POST("/time-slots", h.TimeSlots.Create, admin...)
	api.PATCH("/time-slots/:id", h.TimeSlots.Update, admin...)
	api.DELETE("/time-slots/:id", h.TimeSlots.Delete, admin...)

	api.GET("/users", h.Users.List)
	api.GET("/users/:id", h.Users.Get)
	api.POST("/users", h.Users.Create, admin...)
	api.PATCH("/users/:id", h.Users.Update, admin...)
	api.DELETE("/users/:id", h.Users.Delete, admin...)

	api.GET("/reservations", h.Reservations.List)
	api.GET("/reservations/:id", h.Reservations.Get)
	api.POST("/reservations", h.Reservations.Create, admin...)
	api.PATCH("/reservations/:id", h.Reservations.Update, admin...)
	api.DELETE("/reservations/:id", h.Reservations.Delete, admin...)

	api.GET("/payments-special", h.Payments.List)
	api.GET("/payments-special/:id", h.Payments.Get)
	api.POST("/payments-special", h.Payments.Create, admin...)
	api.PATCH("/payments-special/:id", h.Payments.Update, admin...)
	api.DELETE("/payments-special/:id", h.Payments.Delete, admin...)
}
