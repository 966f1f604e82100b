package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luxurystay/hotel-reservation/internal/booking"
	"github.com/luxurystay/hotel-reservation/internal/model"
)

// RoomRepo provides CRUD operations for rooms.  The status column has a
// single write path outside admin overrides: the booking state machine
// updates it through BookingRepo.Transition, so Update here never
// touches it.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = `id, name, type, price_cents, description, image_url, status, created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }) (model.Room, error) {
	var r model.Room
	err := row.Scan(&r.ID, &r.Name, &r.Type, &r.PriceCents, &r.Description,
		&r.ImageURL, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// Create inserts a room and returns it with generated fields populated.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (name, type, price_cents, description, image_url, status) VALUES (?,?,?,?,?,?)`,
		room.Name, room.Type, room.PriceCents, room.Description, room.ImageURL, room.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	got, err := r.GetByID(ctx, room.ID)
	if err != nil {
		return err
	}
	*room = got
	return nil
}

// GetByID fetches a room or returns booking.ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	room, err := scanRoom(r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, booking.ErrRoomNotFound
	}
	return room, err
}

// List returns all rooms, newest first.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// Update modifies the editable room fields.  Status is excluded; it is
// owned by the state machine and the explicit override.
func (r *RoomRepo) Update(ctx context.Context, id uint64, name string, roomType model.RoomType, priceCents uint32, description, imageURL string) (model.Room, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET name = ?, type = ?, price_cents = ?, description = ?, image_url = ? WHERE id = ?`,
		name, roomType, priceCents, description, imageURL, id); err != nil {
		return model.Room{}, err
	}
	return r.GetByID(ctx, id)
}

// UpdateStatus sets the room status directly.  Used by the admin
// override endpoint only; lifecycle-driven changes go through
// BookingRepo.Transition.
func (r *RoomRepo) UpdateStatus(ctx context.Context, id uint64, status model.RoomStatus) (model.Room, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET status = ? WHERE id = ?`, status, id); err != nil {
		return model.Room{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a room and returns the deleted record.  Bookings that
// reference it keep their room_id; readers use LEFT JOINs so the
// dangling reference is tolerated.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) (model.Room, error) {
	room, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Room{}, err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id); err != nil {
		return model.Room{}, err
	}
	return room, nil
}
