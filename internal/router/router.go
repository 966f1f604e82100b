// Package router maps HTTP routes to handlers and applies the
// authentication, role, cache and rate-limit middleware per group.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/handler"
	"github.com/luxurystay/hotel-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browse endpoints: the
// room catalogue, the careers board, job applications and the contact
// form.  cache may be nil when Redis is unavailable; the catalogue is
// then served uncached.
func RegisterPublic(e *echo.Echo, rooms *handler.RoomHandler, jobs *handler.JobHandler,
	apps *handler.ApplicationHandler, subs *handler.SubmissionHandler, cache echo.MiddlewareFunc) {

	catalogue := e.Group("/v1/rooms")
	if cache != nil {
		catalogue.Use(cache)
	}
	catalogue.GET("", rooms.List)
	catalogue.GET("/:id", rooms.Get)

	// Availability depends on live booking state; never cached.
	e.GET("/v1/rooms/:id/availability", rooms.Availability)

	e.GET("/v1/jobs", jobs.ListOpen)
	e.GET("/v1/jobs/:id", jobs.Get)
	e.POST("/v1/applications", apps.Apply)
	e.POST("/v1/submissions", subs.Create)
}

// RegisterAuth registers the session endpoints.  Register, login and
// refresh are open; logout and /v1/me require a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout, middleware.JWTAuth(jwtSecret))

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterBookings registers the guest-facing booking endpoints.  Any
// authenticated role may book a room or read its own bookings.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1/bookings", middleware.JWTAuth(jwtSecret))
	g.POST("", b.Create)
	g.GET("/mybookings", b.MyBookings)
	g.GET("/:id", b.GetByID)
}
