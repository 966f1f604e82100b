package booking

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/queue"
)

// Store is the persistence contract the state machine needs.  The SQL
// implementation lives in the repository package; tests use an
// in-memory fake.  Transition must apply the booking and room status
// updates atomically (the SQL store runs them in one transaction).
type Store interface {
	// Room returns a room by ID or ErrRoomNotFound.
	Room(ctx context.Context, id uint64) (model.Room, error)
	// ActiveBookings returns the bookings for a room whose status is
	// Upcoming or Checked-In.
	ActiveBookings(ctx context.Context, roomID uint64) ([]model.Booking, error)
	// InsertBooking persists a new booking and fills in its generated
	// ID and timestamps.
	InsertBooking(ctx context.Context, b *model.Booking) error
	// Booking returns a booking by ID or ErrBookingNotFound.
	Booking(ctx context.Context, id uint64) (model.Booking, error)
	// Transition sets the booking status and the linked room status as
	// one atomic unit and returns the updated booking.
	Transition(ctx context.Context, bookingID uint64, bs model.BookingStatus, roomID uint64, rs model.RoomStatus) (model.Booking, error)
}

// Publisher delivers booking lifecycle events to the message broker.
type Publisher interface {
	PublishBookingEvent(ctx context.Context, ev queue.BookingEvent) error
}

// CreateRequest carries the validated input for a new booking.
type CreateRequest struct {
	UserID   uint64
	RoomID   uint64
	CheckIn  time.Time
	CheckOut time.Time
	Guest    model.GuestDetails
}

// Service wires the availability check and the state machine together.
// Creates for the same room are serialized through a per-room mutex so
// that two overlapping requests cannot both pass the availability check
// before either insert commits.
type Service struct {
	store Store
	pub   Publisher // nil disables event publishing

	mu    sync.Mutex
	rooms map[uint64]*sync.Mutex
}

// NewService returns a Service bound to the given store.  pub may be
// nil when no broker is configured.
func NewService(store Store, pub Publisher) *Service {
	if store == nil {
		panic("nil store passed to booking.NewService")
	}
	return &Service{store: store, pub: pub, rooms: make(map[uint64]*sync.Mutex)}
}

// lockRoom returns the mutex guarding check-and-create for one room.
func (s *Service) lockRoom(roomID uint64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.rooms[roomID]
	if !ok {
		m = &sync.Mutex{}
		s.rooms[roomID] = m
	}
	return m
}

// IsAvailable reports whether the room is free for the half-open range
// [checkIn, checkOut).  Read-only; storage errors propagate unchanged.
func (s *Service) IsAvailable(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (bool, error) {
	active, err := s.store.ActiveBookings(ctx, roomID)
	if err != nil {
		return false, err
	}
	for _, b := range active {
		if Overlaps(b.CheckInDate, b.CheckOutDate, checkIn, checkOut) {
			return false, nil
		}
	}
	return true, nil
}

// Create validates the request, checks availability and persists a new
// Upcoming booking.  The room status is not touched: a future booking
// does not occupy the room until actual check-in.
func (s *Service) Create(ctx context.Context, req CreateRequest) (model.Booking, error) {
	nights := Nights(req.CheckIn, req.CheckOut)
	if !req.CheckOut.After(req.CheckIn) || nights < 1 {
		return model.Booking{}, ErrInvalidRange
	}
	if nights > MaxStayNights {
		return model.Booking{}, ErrStayTooLong
	}
	if err := validateGuest(req.Guest); err != nil {
		return model.Booking{}, err
	}

	// Serialize check-and-create per room to close the check-then-act
	// race between concurrent requests for overlapping dates.
	m := s.lockRoom(req.RoomID)
	m.Lock()
	defer m.Unlock()

	room, err := s.store.Room(ctx, req.RoomID)
	if err != nil {
		return model.Booking{}, err
	}
	ok, err := s.IsAvailable(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}
	if !ok {
		return model.Booking{}, ErrRoomUnavailable
	}

	b := model.Booking{
		UserID:          req.UserID,
		RoomID:          req.RoomID,
		CheckInDate:     req.CheckIn,
		CheckOutDate:    req.CheckOut,
		TotalPriceCents: TotalPriceCents(room.PriceCents, req.CheckIn, req.CheckOut),
		Guest:           req.Guest,
		Status:          model.BookingUpcoming,
	}
	if err := s.store.InsertBooking(ctx, &b); err != nil {
		return model.Booking{}, err
	}
	s.publish(ctx, queue.ActionCreated, b, room.Name)
	return b, nil
}

// CheckIn moves an Upcoming booking to Checked-In and marks its room
// Occupied.  Both updates are one atomic unit in the store.
func (s *Service) CheckIn(ctx context.Context, bookingID uint64) (model.Booking, error) {
	return s.transition(ctx, bookingID, model.BookingCheckedIn, model.RoomOccupied, queue.ActionCheckedIn)
}

// CheckOut moves a Checked-In booking to Checked-Out and marks its room
// Cleaning; housekeeping flips it back to Available later through the
// admin override.
func (s *Service) CheckOut(ctx context.Context, bookingID uint64) (model.Booking, error) {
	return s.transition(ctx, bookingID, model.BookingCheckedOut, model.RoomCleaning, queue.ActionCheckedOut)
}

func (s *Service) transition(ctx context.Context, bookingID uint64, to model.BookingStatus, roomStatus model.RoomStatus, action string) (model.Booking, error) {
	b, err := s.store.Booking(ctx, bookingID)
	if err != nil {
		return model.Booking{}, err
	}
	if !canTransition(b.Status, to) {
		return model.Booking{}, ErrInvalidTransition
	}
	updated, err := s.store.Transition(ctx, bookingID, to, b.RoomID, roomStatus)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish(ctx, action, updated, "")
	return updated, nil
}

// publish sends a lifecycle event to the broker.  Delivery is best
// effort: a publish failure is logged and never fails the request.
func (s *Service) publish(ctx context.Context, action string, b model.Booking, roomName string) {
	if s.pub == nil {
		return
	}
	ev := queue.BookingEvent{
		Action:          action,
		BookingID:       b.ID,
		UserID:          b.UserID,
		RoomID:          b.RoomID,
		RoomName:        roomName,
		CheckInDate:     b.CheckInDate.Format("2006-01-02"),
		CheckOutDate:    b.CheckOutDate.Format("2006-01-02"),
		TotalPriceCents: b.TotalPriceCents,
		OccurredAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.pub.PublishBookingEvent(ctx, ev); err != nil {
		log.Printf("booking: publish %s for booking %d failed: %v", action, b.ID, err)
	}
}

func validateGuest(g model.GuestDetails) error {
	if strings.TrimSpace(g.FirstName) == "" ||
		strings.TrimSpace(g.LastName) == "" ||
		strings.TrimSpace(g.Email) == "" ||
		strings.TrimSpace(g.Phone) == "" {
		return ErrGuestRequired
	}
	return nil
}
