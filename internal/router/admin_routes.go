package router

import (
	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/handler"
	"github.com/luxurystay/hotel-reservation/internal/middleware"
)

// AdminHandlers bundles everything mounted under the admin-only group.
type AdminHandlers struct {
	Bookings     *handler.BookingHandler
	Rooms        *handler.RoomHandler
	Users        *handler.UserHandler
	Attendance   *handler.AttendanceHandler
	Dashboard    *handler.DashboardHandler
	Jobs         *handler.JobHandler
	Applications *handler.ApplicationHandler
	Submissions  *handler.SubmissionHandler
	Updates      *handler.UpdateHandler
}

// RegisterAdmin registers the management surface: the booking desk,
// room and user administration, hiring and the overview dashboard.
func RegisterAdmin(e *echo.Echo, h AdminHandlers, jwtSecret string) {
	g := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireAdmin(),
	)

	// Booking desk.
	g.GET("/bookings", h.Bookings.ListAll)
	g.PUT("/bookings/:id/checkin", h.Bookings.CheckIn)
	g.PUT("/bookings/:id/checkout", h.Bookings.CheckOut)

	// Room management.  Status override bypasses the booking lifecycle.
	g.POST("/rooms", h.Rooms.Create)
	g.PUT("/rooms/:id", h.Rooms.Update)
	g.PUT("/rooms/:id/status", h.Rooms.OverrideStatus)
	g.DELETE("/rooms/:id", h.Rooms.Delete)

	// User management.
	g.POST("/users/staff", h.Users.CreateStaff)
	g.GET("/users/staff", h.Users.ListStaff)
	g.GET("/users/guests", h.Users.ListGuests)
	g.PUT("/users/:id/status", h.Users.SetStatus)
	g.PUT("/users/:id/role", h.Users.SetRole)
	g.DELETE("/users/:id", h.Users.Delete)

	// Careers and hiring.
	g.GET("/admin/jobs", h.Jobs.ListAll)
	g.POST("/jobs", h.Jobs.Create)
	g.PUT("/jobs/:id", h.Jobs.Update)
	g.GET("/applications", h.Applications.ListAll)
	g.PUT("/applications/:id/process", h.Applications.Process)

	// Inbox and announcements.
	g.GET("/submissions", h.Submissions.ListAll)
	g.PUT("/submissions/:id/status", h.Submissions.SetStatus)
	g.POST("/updates", h.Updates.Create)

	// Overview.
	g.GET("/dashboard", h.Dashboard.Stats)
	g.GET("/attendance", h.Attendance.ListAll)
}
