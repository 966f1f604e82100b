package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/booking"
	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/repository"
)

// memStore implements booking.Store and BookingReader in memory so the
// handler can be tested through the real service.
type memStore struct {
	mu       sync.Mutex
	rooms    map[uint64]model.Room
	bookings map[uint64]model.Booking
	nextID   uint64
}

func newMemStore() *memStore {
	return &memStore{
		rooms:    make(map[uint64]model.Room),
		bookings: make(map[uint64]model.Booking),
		nextID:   1,
	}
}

func (m *memStore) Room(_ context.Context, id uint64) (model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok {
		return model.Room{}, booking.ErrRoomNotFound
	}
	return r, nil
}

func (m *memStore) ActiveBookings(_ context.Context, roomID uint64) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Booking
	for _, b := range m.bookings {
		if b.RoomID == roomID && b.Status.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) InsertBooking(_ context.Context, b *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = m.nextID
	m.nextID++
	m.bookings[b.ID] = *b
	return nil
}

func (m *memStore) Booking(_ context.Context, id uint64) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return model.Booking{}, booking.ErrBookingNotFound
	}
	return b, nil
}

func (m *memStore) Transition(_ context.Context, bookingID uint64, bs model.BookingStatus, roomID uint64, rs model.RoomStatus) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[bookingID]
	if !ok {
		return model.Booking{}, booking.ErrBookingNotFound
	}
	r, ok := m.rooms[roomID]
	if !ok {
		return model.Booking{}, booking.ErrRoomNotFound
	}
	b.Status = bs
	r.Status = rs
	m.bookings[bookingID] = b
	m.rooms[roomID] = r
	return b, nil
}

func (m *memStore) detail(b model.Booking) repository.BookingDetail {
	d := repository.BookingDetail{Booking: b}
	if r, ok := m.rooms[b.RoomID]; ok {
		d.RoomName = &r.Name
		rt := r.Type
		d.RoomType = &rt
	}
	return d
}

func (m *memStore) GetDetail(_ context.Context, id uint64) (repository.BookingDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return repository.BookingDetail{}, booking.ErrBookingNotFound
	}
	return m.detail(b), nil
}

func (m *memStore) ListByUser(_ context.Context, userID uint64) ([]repository.BookingDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.BookingDetail, 0)
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, m.detail(b))
		}
	}
	return out, nil
}

func (m *memStore) ListAll(_ context.Context) ([]repository.BookingDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.BookingDetail, 0)
	for _, b := range m.bookings {
		out = append(out, m.detail(b))
	}
	return out, nil
}

func newTestBookingHandler() (*BookingHandler, *memStore) {
	store := newMemStore()
	store.rooms[1] = model.Room{
		ID: 1, Name: "Room 204", Type: model.RoomDouble,
		PriceCents: 20000, Status: model.RoomAvailable,
	}
	svc := booking.NewService(store, nil)
	return NewBookingHandler(svc, store), store
}

// invoke runs a handler with an authenticated echo context.
func invoke(t *testing.T, h echo.HandlerFunc, method, path, body string, userID uint64, role model.Role, pathParam string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", string(role))
	if pathParam != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathParam)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

const validBookingBody = `{
	"room_id": 1,
	"check_in_date": "2024-06-10",
	"check_out_date": "2024-06-13",
	"guest_details": {
		"first_name": "Ava",
		"last_name": "Moreno",
		"email": "ava.moreno@example.com",
		"phone": "+1-555-0142"
	}
}`

func TestBookingCreateHappyPath(t *testing.T) {
	h, _ := newTestBookingHandler()
	rec := invoke(t, h.Create, http.MethodPost, "/v1/bookings", validBookingBody, 7, model.RoleGuest, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Booking model.Booking `json:"booking"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Booking.TotalPriceCents != 60000 {
		t.Fatalf("total = %d, want 60000", resp.Booking.TotalPriceCents)
	}
	if resp.Booking.Status != model.BookingUpcoming {
		t.Fatalf("status = %s", resp.Booking.Status)
	}
}

func TestBookingCreateConflict(t *testing.T) {
	h, _ := newTestBookingHandler()
	if rec := invoke(t, h.Create, http.MethodPost, "/v1/bookings", validBookingBody, 7, model.RoleGuest, ""); rec.Code != http.StatusCreated {
		t.Fatalf("first create: %d", rec.Code)
	}
	rec := invoke(t, h.Create, http.MethodPost, "/v1/bookings", validBookingBody, 8, model.RoleGuest, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("conflicting create = %d, want 400 (%s)", rec.Code, rec.Body.String())
	}
}

func TestBookingCreateBadInput(t *testing.T) {
	h, _ := newTestBookingHandler()
	cases := []struct {
		name, body string
	}{
		{"missing room", `{"check_in_date":"2024-06-10","check_out_date":"2024-06-13"}`},
		{"bad date", `{"room_id":1,"check_in_date":"June 10","check_out_date":"2024-06-13"}`},
		{"inverted range", `{"room_id":1,"check_in_date":"2024-06-13","check_out_date":"2024-06-10",
			"guest_details":{"first_name":"A","last_name":"B","email":"a@b.c","phone":"1"}}`},
		{"missing guest", `{"room_id":1,"check_in_date":"2024-06-10","check_out_date":"2024-06-13"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := invoke(t, h.Create, http.MethodPost, "/v1/bookings", tc.body, 7, model.RoleGuest, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestBookingCreateUnknownRoom(t *testing.T) {
	h, _ := newTestBookingHandler()
	body := strings.Replace(validBookingBody, `"room_id": 1`, `"room_id": 99`, 1)
	rec := invoke(t, h.Create, http.MethodPost, "/v1/bookings", body, 7, model.RoleGuest, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestBookingGetByIDOwnership(t *testing.T) {
	h, _ := newTestBookingHandler()
	if rec := invoke(t, h.Create, http.MethodPost, "/v1/bookings", validBookingBody, 7, model.RoleGuest, ""); rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}

	// Owner reads it.
	if rec := invoke(t, h.GetByID, http.MethodGet, "/v1/bookings/1", "", 7, model.RoleGuest, "1"); rec.Code != http.StatusOK {
		t.Fatalf("owner read = %d", rec.Code)
	}
	// Another guest is refused.
	if rec := invoke(t, h.GetByID, http.MethodGet, "/v1/bookings/1", "", 8, model.RoleGuest, "1"); rec.Code != http.StatusForbidden {
		t.Fatalf("stranger read = %d, want 403", rec.Code)
	}
	// Admin may read anything.
	if rec := invoke(t, h.GetByID, http.MethodGet, "/v1/bookings/1", "", 99, model.RoleAdmin, "1"); rec.Code != http.StatusOK {
		t.Fatalf("admin read = %d", rec.Code)
	}
	// Unknown booking.
	if rec := invoke(t, h.GetByID, http.MethodGet, "/v1/bookings/55", "", 7, model.RoleGuest, "55"); rec.Code != http.StatusNotFound {
		t.Fatalf("missing read = %d, want 404", rec.Code)
	}
}

func TestBookingLifecycleEndpoints(t *testing.T) {
	h, store := newTestBookingHandler()
	if rec := invoke(t, h.Create, http.MethodPost, "/v1/bookings", validBookingBody, 7, model.RoleGuest, ""); rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}

	// Check-out before check-in is rejected.
	if rec := invoke(t, h.CheckOut, http.MethodPut, "/v1/bookings/1/checkout", "", 99, model.RoleAdmin, "1"); rec.Code != http.StatusConflict {
		t.Fatalf("premature check-out = %d, want 409", rec.Code)
	}

	rec := invoke(t, h.CheckIn, http.MethodPut, "/v1/bookings/1/checkin", "", 99, model.RoleAdmin, "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("check-in = %d (%s)", rec.Code, rec.Body.String())
	}
	if store.rooms[1].Status != model.RoomOccupied {
		t.Fatalf("room after check-in = %s", store.rooms[1].Status)
	}

	// Double check-in.
	if rec := invoke(t, h.CheckIn, http.MethodPut, "/v1/bookings/1/checkin", "", 99, model.RoleAdmin, "1"); rec.Code != http.StatusConflict {
		t.Fatalf("double check-in = %d, want 409", rec.Code)
	}

	rec = invoke(t, h.CheckOut, http.MethodPut, "/v1/bookings/1/checkout", "", 99, model.RoleAdmin, "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("check-out = %d (%s)", rec.Code, rec.Body.String())
	}
	if store.rooms[1].Status != model.RoomCleaning {
		t.Fatalf("room after check-out = %s", store.rooms[1].Status)
	}

	// Unknown booking id.
	if rec := invoke(t, h.CheckIn, http.MethodPut, "/v1/bookings/9/checkin", "", 99, model.RoleAdmin, "9"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown check-in = %d, want 404", rec.Code)
	}
}

func TestMyBookings(t *testing.T) {
	h, _ := newTestBookingHandler()
	if rec := invoke(t, h.Create, http.MethodPost, "/v1/bookings", validBookingBody, 7, model.RoleGuest, ""); rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}
	body := strings.Replace(validBookingBody, `"2024-06-10"`, `"2024-07-01"`, 1)
	body = strings.Replace(body, `"2024-06-13"`, `"2024-07-03"`, 1)
	if rec := invoke(t, h.Create, http.MethodPost, "/v1/bookings", body, 8, model.RoleGuest, ""); rec.Code != http.StatusCreated {
		t.Fatalf("second create: %d", rec.Code)
	}

	rec := invoke(t, h.MyBookings, http.MethodGet, "/v1/bookings/mybookings", "", 7, model.RoleGuest, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Bookings []repository.BookingDetail `json:"bookings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(resp.Bookings))
	}
	if resp.Bookings[0].UserID != 7 {
		t.Fatalf("booking belongs to user %d", resp.Bookings[0].UserID)
	}
	if resp.Bookings[0].RoomName == nil || *resp.Bookings[0].RoomName != "Room 204" {
		t.Fatal("room not populated in listing")
	}
}
