package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/repository"
)

// AttendanceHandler tracks staff shift check-ins.  One record per staff
// member per calendar day (UTC).
type AttendanceHandler struct {
	Attendance *repository.AttendanceRepo
}

func NewAttendanceHandler(a *repository.AttendanceRepo) *AttendanceHandler {
	return &AttendanceHandler{Attendance: a}
}

// CheckIn opens today's attendance record for the calling staff member.
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Attendance.CheckIn(ctx, uid, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyCheckedIn) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "already checked in today"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check-in failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "checked in", "attendance": a})
}

// CheckOut closes today's open attendance record.
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Attendance.CheckOut(ctx, uid, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNoOpenAttendance) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "no open attendance record for today"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check-out failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "checked out", "attendance": a})
}

// ListAll returns every attendance record with staff names.  Admin only.
func (h *AttendanceHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Attendance.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"attendance": list})
}
