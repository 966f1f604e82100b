package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/repository"
)

// DashboardHandler aggregates the admin overview metrics.
type DashboardHandler struct {
	Repo  *repository.DashboardRepo
	Users *repository.UserRepo
}

func NewDashboardHandler(s *repository.DashboardRepo, u *repository.UserRepo) *DashboardHandler {
	return &DashboardHandler{Repo: s, Users: u}
}

// recentGuestCount is how many newest guest accounts the overview shows.
const recentGuestCount = 5

// Stats returns the admin overview: room totals, occupancy rate,
// today's check-ins and revenue, and the newest guest signups.  The
// five reads are independent and run concurrently.
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	startOfToday := time.Now().UTC().Truncate(24 * time.Hour)

	var (
		wg   sync.WaitGroup
		errs [5]error

		totalRooms    int
		occupiedRooms int
		checkInsToday int
		revenueCents  uint64
		recentGuests  []model.User
	)
	wg.Add(5)
	go func() {
		defer wg.Done()
		totalRooms, errs[0] = h.Repo.CountRooms(ctx)
	}()
	go func() {
		defer wg.Done()
		occupiedRooms, errs[1] = h.Repo.CountRoomsByStatus(ctx, model.RoomOccupied)
	}()
	go func() {
		defer wg.Done()
		checkInsToday, errs[2] = h.Repo.CountCheckInsSince(ctx, startOfToday)
	}()
	go func() {
		defer wg.Done()
		revenueCents, errs[3] = h.Repo.RevenueCentsSince(ctx, startOfToday)
	}()
	go func() {
		defer wg.Done()
		recentGuests, errs[4] = h.Users.RecentGuests(ctx, recentGuestCount)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
	}

	occupancy := 0.0
	if totalRooms > 0 {
		occupancy = float64(occupiedRooms) / float64(totalRooms) * 100
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_rooms":         totalRooms,
		"occupied_rooms":      occupiedRooms,
		"occupancy_rate":      occupancy,
		"check_ins_today":     checkInsToday,
		"revenue_cents_today": revenueCents,
		"recent_guests":       recentGuests,
	})
}
