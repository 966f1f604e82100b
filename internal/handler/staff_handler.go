package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/repository"
)

// StaffHandler serves the staff portal dashboard.
type StaffHandler struct {
	Attendance *repository.AttendanceRepo
	Updates    *repository.UpdateRepo
}

func NewStaffHandler(a *repository.AttendanceRepo, u *repository.UpdateRepo) *StaffHandler {
	return &StaffHandler{Attendance: a, Updates: u}
}

// recentUpdates is how many announcements the dashboard shows.
const recentUpdates = 10

// Dashboard returns today's attendance status for the caller plus the
// latest announcements.  The two reads are independent, so they run
// concurrently and the response waits for both.
func (h *StaffHandler) Dashboard(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var (
		wg sync.WaitGroup

		today    model.Attendance
		todayErr error

		updates    []model.Update
		updatesErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		today, todayErr = h.Attendance.TodayFor(ctx, uid, time.Now())
	}()
	go func() {
		defer wg.Done()
		updates, updatesErr = h.Updates.ListRecent(ctx, recentUpdates)
	}()
	wg.Wait()

	status := "Checked Out"
	var attendance *model.Attendance
	switch {
	case todayErr == nil:
		attendance = &today
		if today.CheckOutTime == nil {
			status = "Checked In"
		}
	case errors.Is(todayErr, sql.ErrNoRows):
		// no record today; stays "Checked Out"
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if updatesErr != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"attendance_status": status,
		"attendance":        attendance,
		"updates":           updates,
	})
}
