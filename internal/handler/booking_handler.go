package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/booking"
	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/repository"
)

// BookingReader is the read side of the booking store: listings and
// detail views with the room and user rows joined in.
type BookingReader interface {
	GetDetail(ctx context.Context, id uint64) (repository.BookingDetail, error)
	ListByUser(ctx context.Context, userID uint64) ([]repository.BookingDetail, error)
	ListAll(ctx context.Context) ([]repository.BookingDetail, error)
}

// BookingHandler exposes the booking lifecycle over HTTP.  Writes go
// through the booking service; reads go straight to the repository.
type BookingHandler struct {
	Svc    *booking.Service
	Reader BookingReader
}

func NewBookingHandler(svc *booking.Service, r BookingReader) *BookingHandler {
	return &BookingHandler{Svc: svc, Reader: r}
}

type createBookingReq struct {
	RoomID   uint64             `json:"room_id"`
	CheckIn  string             `json:"check_in_date"`
	CheckOut string             `json:"check_out_date"`
	Guest    model.GuestDetails `json:"guest_details"`
}

// bookingErr maps domain sentinels to HTTP responses.  Anything not in
// the table is a server fault.
func bookingErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrRoomUnavailable):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidRange), errors.Is(err, booking.ErrStayTooLong),
		errors.Is(err, booking.ErrGuestRequired):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrRoomNotFound), errors.Is(err, booking.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking operation failed"})
}

// Create books a room for the authenticated user.
func (h *BookingHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id required"})
	}
	in, err := parseDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in_date must be YYYY-MM-DD"})
	}
	out, err := parseDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out_date must be YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Svc.Create(ctx, booking.CreateRequest{
		UserID:   uid,
		RoomID:   req.RoomID,
		CheckIn:  in,
		CheckOut: out,
		Guest:    req.Guest,
	})
	if err != nil {
		return bookingErr(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "booking created", "booking": b})
}

// MyBookings lists the authenticated user's own bookings ordered by
// check-in date.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Reader.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": list})
}

// GetByID returns one booking with room and user populated.  Guests may
// only read their own bookings; admins may read any.
func (h *BookingHandler) GetByID(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Reader.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if d.UserID != uid && getRole(c) != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": d})
}

// ListAll returns every booking, newest check-in first.  Admin only.
func (h *BookingHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Reader.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": list})
}

// CheckIn moves an Upcoming booking to Checked-In and marks the room
// Occupied.
func (h *BookingHandler) CheckIn(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Svc.CheckIn(ctx, id)
	if err != nil {
		return bookingErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "guest checked in", "booking": b})
}

// CheckOut moves a Checked-In booking to Checked-Out and marks the room
// Cleaning.
func (h *BookingHandler) CheckOut(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Svc.CheckOut(ctx, id)
	if err != nil {
		return bookingErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "guest checked out", "booking": b})
}
