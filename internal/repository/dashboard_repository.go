package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

// DashboardRepo serves the aggregate counters shown on the admin
// dashboard.  Each method is an independent read; the handler issues
// them concurrently and joins the results.
type DashboardRepo struct{ DB *sql.DB }

// NewDashboardRepo returns a new DashboardRepo bound to the given database.
func NewDashboardRepo(db *sql.DB) *DashboardRepo { return &DashboardRepo{DB: db} }

// CountRooms returns the total number of rooms.
func (r *DashboardRepo) CountRooms(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&n)
	return n, err
}

// CountRoomsByStatus returns the number of rooms in the given status.
func (r *DashboardRepo) CountRoomsByStatus(ctx context.Context, status model.RoomStatus) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rooms WHERE status = ?`, status).Scan(&n)
	return n, err
}

// CountCheckInsSince counts bookings whose check-in date falls on or
// after the given instant (start of today for the dashboard).
func (r *DashboardRepo) CountCheckInsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE check_in_date >= ?`, since).Scan(&n)
	return n, err
}

// RevenueCentsSince sums the total price of bookings created on or
// after the given instant.
func (r *DashboardRepo) RevenueCentsSince(ctx context.Context, since time.Time) (uint64, error) {
	var cents uint64
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_price_cents), 0) FROM bookings WHERE created_at >= ?`, since).Scan(&cents)
	return cents, err
}
