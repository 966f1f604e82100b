package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

// AttendanceRepo records daily staff check-ins and check-outs.  At most
// one record exists per staff member per day; a unique index on
// (staff_id, date) backs the duplicate check-in guard.
type AttendanceRepo struct{ DB *sql.DB }

// NewAttendanceRepo returns a new AttendanceRepo bound to the given database.
func NewAttendanceRepo(db *sql.DB) *AttendanceRepo { return &AttendanceRepo{DB: db} }

const attendanceColumns = `id, staff_id, check_in_time, check_out_time, date, created_at`

func scanAttendance(row interface{ Scan(...any) error }) (model.Attendance, error) {
	var a model.Attendance
	var out sql.NullTime
	err := row.Scan(&a.ID, &a.StaffID, &a.CheckInTime, &out, &a.Date, &a.CreatedAt)
	if out.Valid {
		t := out.Time
		a.CheckOutTime = &t
	}
	return a, err
}

// CheckIn opens today's attendance record for a staff member.  A second
// check-in on the same day returns ErrAlreadyCheckedIn.
func (r *AttendanceRepo) CheckIn(ctx context.Context, staffID uint64, now time.Time) (model.Attendance, error) {
	date := now.UTC().Format("2006-01-02")
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO attendance (staff_id, check_in_time, date) VALUES (?,?,?)`,
		staffID, now.UTC(), date)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Attendance{}, ErrAlreadyCheckedIn
		}
		return model.Attendance{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Attendance{}, err
	}
	return r.getByID(ctx, uint64(id))
}

// CheckOut closes today's open attendance record.  Checking out with no
// open record (never checked in, or already checked out) returns
// ErrNoOpenAttendance.
func (r *AttendanceRepo) CheckOut(ctx context.Context, staffID uint64, now time.Time) (model.Attendance, error) {
	date := now.UTC().Format("2006-01-02")
	res, err := r.DB.ExecContext(ctx,
		`UPDATE attendance SET check_out_time = ? WHERE staff_id = ? AND date = ? AND check_out_time IS NULL`,
		now.UTC(), staffID, date)
	if err != nil {
		return model.Attendance{}, err
	}
	if n, err2 := res.RowsAffected(); err2 == nil && n == 0 {
		return model.Attendance{}, ErrNoOpenAttendance
	}
	return r.TodayFor(ctx, staffID, now)
}

// TodayFor returns today's attendance record for a staff member, if
// any.  A missing record is reported as sql.ErrNoRows for the staff
// dashboard to interpret as "Checked Out".
func (r *AttendanceRepo) TodayFor(ctx context.Context, staffID uint64, now time.Time) (model.Attendance, error) {
	date := now.UTC().Format("2006-01-02")
	return scanAttendance(r.DB.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE staff_id = ? AND date = ? LIMIT 1`,
		staffID, date))
}

func (r *AttendanceRepo) getByID(ctx context.Context, id uint64) (model.Attendance, error) {
	a, err := scanAttendance(r.DB.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Attendance{}, err
	}
	return a, err
}

// AttendanceEntry is an attendance record with the staff member's name
// joined in for the admin listing.
type AttendanceEntry struct {
	model.Attendance
	StaffName string `json:"staff_name"`
}

// ListAll returns every attendance record, newest day first.
func (r *AttendanceRepo) ListAll(ctx context.Context) ([]AttendanceEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT a.id, a.staff_id, a.check_in_time, a.check_out_time, a.date, a.created_at, u.name
		 FROM attendance a
		 JOIN users u ON u.id = a.staff_id
		 ORDER BY a.date DESC, a.check_in_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]AttendanceEntry, 0)
	for rows.Next() {
		var e AttendanceEntry
		var out sql.NullTime
		if err := rows.Scan(&e.ID, &e.StaffID, &e.CheckInTime, &out, &e.Date, &e.CreatedAt, &e.StaffName); err != nil {
			return nil, err
		}
		if out.Valid {
			t := out.Time
			e.CheckOutTime = &t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
