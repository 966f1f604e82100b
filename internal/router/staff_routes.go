package router

import (
	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/handler"
	"github.com/luxurystay/hotel-reservation/internal/middleware"
)

// RegisterStaff registers the staff portal: shift attendance, the
// dashboard and the announcement feed.  Any non-guest role may access
// these.
func RegisterStaff(e *echo.Echo, att *handler.AttendanceHandler, staff *handler.StaffHandler,
	updates *handler.UpdateHandler, jwtSecret string) {

	g := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireStaff(),
	)
	g.POST("/attendance/checkin", att.CheckIn)
	g.PUT("/attendance/checkout", att.CheckOut)
	g.GET("/staff/dashboard", staff.Dashboard)
	g.GET("/updates", updates.ListRecent)
}
