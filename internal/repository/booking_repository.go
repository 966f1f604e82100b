package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luxurystay/hotel-reservation/internal/booking"
	"github.com/luxurystay/hotel-reservation/internal/model"
)

// BookingRepo provides persistence for bookings.  It implements
// booking.Store so the state machine can run against it, and adds the
// populated read queries the HTTP layer needs (room and user details
// joined in).  All date columns are DATE values read back as UTC
// midnight via parseTime.
type BookingRepo struct {
	db    *sql.DB
	rooms *RoomRepo
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB, rooms *RoomRepo) *BookingRepo {
	return &BookingRepo{db: db, rooms: rooms}
}

const bookingColumns = `id, user_id, room_id, check_in_date, check_out_date, total_price_cents,
	guest_first_name, guest_last_name, guest_email, guest_phone, special_requests,
	status, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (model.Booking, error) {
	var b model.Booking
	var special sql.NullString
	err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CheckInDate, &b.CheckOutDate,
		&b.TotalPriceCents, &b.Guest.FirstName, &b.Guest.LastName, &b.Guest.Email,
		&b.Guest.Phone, &special, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if special.Valid {
		b.Guest.SpecialRequests = special.String
	}
	return b, err
}

// Room implements booking.Store.
func (r *BookingRepo) Room(ctx context.Context, id uint64) (model.Room, error) {
	return r.rooms.GetByID(ctx, id)
}

// ActiveBookings implements booking.Store: bookings for a room whose
// status still occupies it.  This is the query behind the availability
// overlap check.
func (r *BookingRepo) ActiveBookings(ctx context.Context, roomID uint64) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE room_id = ? AND status IN (?, ?)`,
		roomID, model.BookingUpcoming, model.BookingCheckedIn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// InsertBooking implements booking.Store.  The generated ID and
// timestamps are populated on the provided record.
func (r *BookingRepo) InsertBooking(ctx context.Context, b *model.Booking) error {
	var special any
	if b.Guest.SpecialRequests != "" {
		special = b.Guest.SpecialRequests
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (user_id, room_id, check_in_date, check_out_date, total_price_cents,
			guest_first_name, guest_last_name, guest_email, guest_phone, special_requests, status)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		b.UserID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.TotalPriceCents,
		b.Guest.FirstName, b.Guest.LastName, b.Guest.Email, b.Guest.Phone, special, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	got, err := r.Booking(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = got
	return nil
}

// Booking implements booking.Store.
func (r *BookingRepo) Booking(ctx context.Context, id uint64) (model.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, booking.ErrBookingNotFound
	}
	return b, err
}

// Transition implements booking.Store: the booking status update and
// the linked room status update commit or roll back together.  A
// missing room row fails the transaction, leaving the booking
// untouched.
func (r *BookingRepo) Transition(ctx context.Context, bookingID uint64, bs model.BookingStatus, roomID uint64, rs model.RoomStatus) (model.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, bs, bookingID)
	if err != nil {
		return model.Booking{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Booking{}, booking.ErrBookingNotFound
	}
	res, err = tx.ExecContext(ctx, `UPDATE rooms SET status = ? WHERE id = ?`, rs, roomID)
	if err != nil {
		return model.Booking{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Booking{}, booking.ErrRoomNotFound
	}

	b, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, bookingID))
	if err != nil {
		return model.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	committed = true
	return b, nil
}

// BookingDetail is a booking with its room (and, for admin listings,
// its user) populated.  Room fields are pointers because a deleted room
// leaves the booking with a dangling reference that must still render.
type BookingDetail struct {
	model.Booking
	RoomName     *string         `json:"room_name"`
	RoomType     *model.RoomType `json:"room_type,omitempty"`
	RoomImageURL *string         `json:"room_image_url,omitempty"`
	UserName     *string         `json:"user_name,omitempty"`
	UserEmail    *string         `json:"user_email,omitempty"`
}

const detailQuery = `SELECT b.id, b.user_id, b.room_id, b.check_in_date, b.check_out_date,
		b.total_price_cents, b.guest_first_name, b.guest_last_name, b.guest_email,
		b.guest_phone, b.special_requests, b.status, b.created_at, b.updated_at,
		r.name, r.type, r.image_url, u.name, u.email
	FROM bookings b
	LEFT JOIN rooms r ON r.id = b.room_id
	LEFT JOIN users u ON u.id = b.user_id`

func scanDetail(row interface{ Scan(...any) error }) (BookingDetail, error) {
	var d BookingDetail
	var special, roomName, roomType, roomImage, userName, userEmail sql.NullString
	err := row.Scan(&d.ID, &d.UserID, &d.RoomID, &d.CheckInDate, &d.CheckOutDate,
		&d.TotalPriceCents, &d.Guest.FirstName, &d.Guest.LastName, &d.Guest.Email,
		&d.Guest.Phone, &special, &d.Status, &d.CreatedAt, &d.UpdatedAt,
		&roomName, &roomType, &roomImage, &userName, &userEmail)
	if err != nil {
		return d, err
	}
	if special.Valid {
		d.Guest.SpecialRequests = special.String
	}
	if roomName.Valid {
		d.RoomName = &roomName.String
	}
	if roomType.Valid {
		rt := model.RoomType(roomType.String)
		d.RoomType = &rt
	}
	if roomImage.Valid {
		d.RoomImageURL = &roomImage.String
	}
	if userName.Valid {
		d.UserName = &userName.String
	}
	if userEmail.Valid {
		d.UserEmail = &userEmail.String
	}
	return d, nil
}

// GetDetail returns one booking with room and user populated, or
// booking.ErrBookingNotFound.
func (r *BookingRepo) GetDetail(ctx context.Context, id uint64) (BookingDetail, error) {
	d, err := scanDetail(r.db.QueryRowContext(ctx, detailQuery+` WHERE b.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return BookingDetail{}, booking.ErrBookingNotFound
	}
	return d, err
}

// ListByUser returns a user's bookings with room details, soonest
// check-in first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	return r.listDetails(ctx, detailQuery+` WHERE b.user_id = ? ORDER BY b.check_in_date ASC`, userID)
}

// ListAll returns every booking with room and user details, latest
// check-in first.  Admin only.
func (r *BookingRepo) ListAll(ctx context.Context) ([]BookingDetail, error) {
	return r.listDetails(ctx, detailQuery+` ORDER BY b.check_in_date DESC`)
}

func (r *BookingRepo) listDetails(ctx context.Context, query string, args ...any) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]BookingDetail, 0)
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
