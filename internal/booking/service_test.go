package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/queue"
)

// fakeStore is an in-memory Store.  A mutex guards the maps so the
// concurrency tests can hammer it from multiple goroutines.
type fakeStore struct {
	mu       sync.Mutex
	rooms    map[uint64]model.Room
	bookings map[uint64]model.Booking
	nextID   uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:    make(map[uint64]model.Room),
		bookings: make(map[uint64]model.Booking),
		nextID:   1,
	}
}

func (f *fakeStore) addRoom(r model.Room) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms[r.ID] = r
}

func (f *fakeStore) room(id uint64) model.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rooms[id]
}

func (f *fakeStore) Room(_ context.Context, id uint64) (model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	if !ok {
		return model.Room{}, ErrRoomNotFound
	}
	return r, nil
}

func (f *fakeStore) ActiveBookings(_ context.Context, roomID uint64) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Status.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertBooking(_ context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = f.nextID
	f.nextID++
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeStore) Booking(_ context.Context, id uint64) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeStore) Transition(_ context.Context, bookingID uint64, bs model.BookingStatus, roomID uint64, rs model.RoomStatus) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	r, ok := f.rooms[roomID]
	if !ok {
		return model.Booking{}, ErrRoomNotFound
	}
	b.Status = bs
	b.UpdatedAt = time.Now().UTC()
	r.Status = rs
	f.bookings[bookingID] = b
	f.rooms[roomID] = r
	return b, nil
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.BookingEvent
}

func (p *recordingPublisher) PublishBookingEvent(_ context.Context, ev queue.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Action
	}
	return out
}

func guest() model.GuestDetails {
	return model.GuestDetails{
		FirstName: "Ava",
		LastName:  "Moreno",
		Email:     "ava.moreno@example.com",
		Phone:     "+1-555-0142",
	}
}

func standardRoom(id uint64) model.Room {
	return model.Room{
		ID:         id,
		Name:       "Room 204",
		Type:       model.RoomDouble,
		PriceCents: 20000,
		Status:     model.RoomAvailable,
	}
}

func TestCreateBooking(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	svc := NewService(store, nil)

	b, err := svc.Create(context.Background(), CreateRequest{
		UserID:   7,
		RoomID:   1,
		CheckIn:  day("2024-06-10"),
		CheckOut: day("2024-06-13"),
		Guest:    guest(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID == 0 {
		t.Fatal("booking ID not assigned")
	}
	if b.Status != model.BookingUpcoming {
		t.Fatalf("status = %s, want %s", b.Status, model.BookingUpcoming)
	}
	if b.TotalPriceCents != 60000 {
		t.Fatalf("total = %d, want 60000 (3 nights x 20000)", b.TotalPriceCents)
	}
	// Creating a future booking must not occupy the room.
	if got := store.room(1).Status; got != model.RoomAvailable {
		t.Fatalf("room status after create = %s, want %s", got, model.RoomAvailable)
	}
}

func TestCreateRejectsInvalidRange(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	svc := NewService(store, nil)

	for _, out := range []string{"2024-06-10", "2024-06-09"} {
		_, err := svc.Create(context.Background(), CreateRequest{
			UserID: 7, RoomID: 1,
			CheckIn: day("2024-06-10"), CheckOut: day(out),
			Guest: guest(),
		})
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("check-out %s: err = %v, want ErrInvalidRange", out, err)
		}
	}
}

func TestCreateRejectsExcessiveStay(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	svc := NewService(store, nil)

	// A fat-fingered check-out year should not produce a huge booking.
	_, err := svc.Create(context.Background(), CreateRequest{
		UserID: 7, RoomID: 1,
		CheckIn: day("2024-06-10"), CheckOut: day("3024-06-10"),
		Guest: guest(),
	})
	if !errors.Is(err, ErrStayTooLong) {
		t.Fatalf("err = %v, want ErrStayTooLong", err)
	}

	// A full year is still bookable.
	if _, err := svc.Create(context.Background(), CreateRequest{
		UserID: 7, RoomID: 1,
		CheckIn: day("2024-06-10"), CheckOut: day("2025-06-10"),
		Guest: guest(),
	}); err != nil {
		t.Fatalf("year-long stay rejected: %v", err)
	}
}

func TestCreateRejectsIncompleteGuest(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	svc := NewService(store, nil)

	g := guest()
	g.Phone = "  "
	_, err := svc.Create(context.Background(), CreateRequest{
		UserID: 7, RoomID: 1,
		CheckIn: day("2024-06-10"), CheckOut: day("2024-06-12"),
		Guest: g,
	})
	if !errors.Is(err, ErrGuestRequired) {
		t.Fatalf("err = %v, want ErrGuestRequired", err)
	}
}

func TestCreateUnknownRoom(t *testing.T) {
	svc := NewService(newFakeStore(), nil)
	_, err := svc.Create(context.Background(), CreateRequest{
		UserID: 7, RoomID: 99,
		CheckIn: day("2024-06-10"), CheckOut: day("2024-06-12"),
		Guest: guest(),
	})
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestCreateConflictingDates(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	svc := NewService(store, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{
		UserID: 7, RoomID: 1,
		CheckIn: day("2024-06-10"), CheckOut: day("2024-06-13"),
		Guest: guest(),
	}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(ctx, CreateRequest{
		UserID: 8, RoomID: 1,
		CheckIn: day("2024-06-12"), CheckOut: day("2024-06-14"),
		Guest: guest(),
	})
	if !errors.Is(err, ErrRoomUnavailable) {
		t.Fatalf("overlapping create: err = %v, want ErrRoomUnavailable", err)
	}

	// Back-to-back is fine: check-in on the earlier booking's check-out day.
	if _, err := svc.Create(ctx, CreateRequest{
		UserID: 8, RoomID: 1,
		CheckIn: day("2024-06-13"), CheckOut: day("2024-06-15"),
		Guest: guest(),
	}); err != nil {
		t.Fatalf("back-to-back create: %v", err)
	}
}

func TestCheckedOutBookingDoesNotBlock(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	svc := NewService(store, nil)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{
		UserID: 7, RoomID: 1,
		CheckIn: day("2024-06-10"), CheckOut: day("2024-06-13"),
		Guest: guest(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CheckIn(ctx, b.ID); err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if _, err := svc.CheckOut(ctx, b.ID); err != nil {
		t.Fatalf("check-out: %v", err)
	}

	// Same dates again: the finished stay no longer holds the room.
	if _, err := svc.Create(ctx, CreateRequest{
		UserID: 8, RoomID: 1,
		CheckIn: day("2024-06-10"), CheckOut: day("2024-06-13"),
		Guest: guest(),
	}); err != nil {
		t.Fatalf("create over checked-out stay: %v", err)
	}
}

func TestLifecycleRoomStatus(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	pub := &recordingPublisher{}
	svc := NewService(store, pub)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{
		UserID: 7, RoomID: 1,
		CheckIn: day("2024-06-10"), CheckOut: day("2024-06-13"),
		Guest: guest(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.CheckIn(ctx, b.ID)
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if got.Status != model.BookingCheckedIn {
		t.Fatalf("booking after check-in = %s", got.Status)
	}
	if store.room(1).Status != model.RoomOccupied {
		t.Fatalf("room after check-in = %s, want %s", store.room(1).Status, model.RoomOccupied)
	}

	got, err = svc.CheckOut(ctx, b.ID)
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if got.Status != model.BookingCheckedOut {
		t.Fatalf("booking after check-out = %s", got.Status)
	}
	if store.room(1).Status != model.RoomCleaning {
		t.Fatalf("room after check-out = %s, want %s", store.room(1).Status, model.RoomCleaning)
	}

	want := []string{queue.ActionCreated, queue.ActionCheckedIn, queue.ActionCheckedOut}
	actions := pub.actions()
	if len(actions) != len(want) {
		t.Fatalf("published %d events, want %d", len(actions), len(want))
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Fatalf("event %d = %s, want %s", i, actions[i], want[i])
		}
	}
}

func TestInvalidTransitions(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	svc := NewService(store, nil)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{
		UserID: 7, RoomID: 1,
		CheckIn: day("2024-06-10"), CheckOut: day("2024-06-13"),
		Guest: guest(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Check-out before check-in.
	if _, err := svc.CheckOut(ctx, b.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("check-out of upcoming: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.CheckIn(ctx, b.ID); err != nil {
		t.Fatalf("check-in: %v", err)
	}
	// Double check-in.
	if _, err := svc.CheckIn(ctx, b.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("double check-in: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.CheckOut(ctx, b.ID); err != nil {
		t.Fatalf("check-out: %v", err)
	}
	// Double check-out.
	if _, err := svc.CheckOut(ctx, b.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("double check-out: err = %v, want ErrInvalidTransition", err)
	}

	if _, err := svc.CheckIn(ctx, 999); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("check-in unknown booking: err = %v, want ErrBookingNotFound", err)
	}
}

func TestConcurrentCreatesOneWinner(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	svc := NewService(store, nil)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), CreateRequest{
				UserID: uint64(i + 1), RoomID: 1,
				CheckIn: day("2024-06-10"), CheckOut: day("2024-06-13"),
				Guest: guest(),
			})
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrRoomUnavailable):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Fatalf("%d creates succeeded for the same dates, want exactly 1", won)
	}
	if lost != attempts-1 {
		t.Fatalf("%d creates rejected, want %d", lost, attempts-1)
	}
}

func TestIsAvailable(t *testing.T) {
	store := newFakeStore()
	store.addRoom(standardRoom(1))
	svc := NewService(store, nil)
	ctx := context.Background()

	ok, err := svc.IsAvailable(ctx, 1, day("2024-06-10"), day("2024-06-13"))
	if err != nil || !ok {
		t.Fatalf("empty room: ok=%v err=%v", ok, err)
	}
	if _, err := svc.Create(ctx, CreateRequest{
		UserID: 7, RoomID: 1,
		CheckIn: day("2024-06-10"), CheckOut: day("2024-06-13"),
		Guest: guest(),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	ok, err = svc.IsAvailable(ctx, 1, day("2024-06-12"), day("2024-06-14"))
	if err != nil || ok {
		t.Fatalf("overlapping range: ok=%v err=%v, want unavailable", ok, err)
	}
	ok, err = svc.IsAvailable(ctx, 1, day("2024-06-13"), day("2024-06-15"))
	if err != nil || !ok {
		t.Fatalf("adjacent range: ok=%v err=%v, want available", ok, err)
	}
}
