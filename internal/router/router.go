package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/cargonova/logistics-api/internal/config"
	"github.com/cargonova/logistics-api/internal/handler"    // import the handlers that implement business logic
	"github.com/cargonova/logistics-api/internal/middleware" // import Redis-backed cache and rate limit middleware
)

// RegisterRoutes registers routes that require no handler state on the
// provided Echo instance.  Currently it exposes only a health check,
// which load balancers and monitoring systems use to verify that the
// service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBooking registers the booking wizard endpoints under
// /v1/bookings.  A client opens a session, pushes form fields into it,
// and moves it forward or back one step at a time; advancing from the
// review step confirms the booking.  Confirmed bookings are readable
// by number from the archive.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler) {
	g := e.Group("/v1/bookings")
	g.POST("/sessions", b.CreateSession)
	g.GET("/sessions/:id", b.GetSession)
	g.PATCH("/sessions/:id/fields", b.SetFields)
	g.POST("/sessions/:id/advance", b.Advance)
	g.POST("/sessions/:id/back", b.Back)
	g.GET("/:number", b.GetBooking)
}

// RegisterTracking registers the tracking lookup endpoint.  The route
// carries the token bucket limiter so a client cannot fire lookups
// faster than the simulated carrier latency would ever allow from the
// site itself.
func RegisterTracking(e *echo.Echo, t *handler.TrackingHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	e.GET("/v1/tracking/:number", t.Track, middleware.NewTokenBucket(rlCfg, rdb))
}

// RegisterContact registers the contact form intake endpoint.
func RegisterContact(e *echo.Echo, ct *handler.ContactHandler) {
	e.POST("/v1/contact", ct.Submit)
}

// RegisterContent registers the static marketing catalog endpoints.
// Responses only change with a release, so both sit behind the Redis
// response cache.
func RegisterContent(e *echo.Echo, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	e.GET("/v1/content/services", handler.GetServices, cache)
	e.GET("/v1/content/team", handler.GetTeam, cache)
}
