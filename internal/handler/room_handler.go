package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/booking"
	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/repository"
)

// RoomHandler serves the public room catalogue and the admin room
// management endpoints.
type RoomHandler struct {
	Rooms *repository.RoomRepo
	Svc   *booking.Service
}

func NewRoomHandler(r *repository.RoomRepo, svc *booking.Service) *RoomHandler {
	return &RoomHandler{Rooms: r, Svc: svc}
}

type roomReq struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	PriceCents  uint32 `json:"price_cents"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (r *roomReq) validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name required")
	}
	if !model.RoomType(r.Type).IsValid() {
		return errors.New("invalid room type")
	}
	if r.PriceCents == 0 {
		return errors.New("price_cents must be positive")
	}
	return nil
}

// List returns the room catalogue.  Public; sits behind the response
// cache so repeated browsing does not hit the database.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

// Get returns one room.  Public.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"room": room})
}

// Availability reports whether a room is free for a date range.
// Public, so guests can check before registering.
func (h *RoomHandler) Availability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	in, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be YYYY-MM-DD"})
	}
	out, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be YYYY-MM-DD"})
	}
	if !out.After(in) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": booking.ErrInvalidRange.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Rooms.GetByID(ctx, id); err != nil {
		if errors.Is(err, booking.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	ok, err := h.Svc.IsAvailable(ctx, id, in, out)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"room_id": id, "available": ok})
}

// Create adds a room.  Admin only.  New rooms start Available.
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room := model.Room{
		Name:        req.Name,
		Type:        model.RoomType(req.Type),
		PriceCents:  req.PriceCents,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      model.RoomAvailable,
	}
	if err := h.Rooms.Create(ctx, &room); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create room failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "room created", "room": room})
}

// Update edits the descriptive room fields.  Status is not editable
// here; the lifecycle and the override endpoint own it.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.Update(ctx, id, req.Name, model.RoomType(req.Type), req.PriceCents, req.Description, req.ImageURL)
	if err != nil {
		if errors.Is(err, booking.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update room failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room updated", "room": room})
}

type roomStatusReq struct {
	Status string `json:"status"`
}

// OverrideStatus sets the room status directly, bypassing the booking
// lifecycle.  Used to flag Maintenance or to clear Cleaning once
// housekeeping is done.
func (h *RoomHandler) OverrideStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req roomStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := model.RoomStatus(strings.TrimSpace(req.Status))
	if !status.IsValid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, booking.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room status updated", "room": room})
}

// Delete removes a room.  Existing bookings keep the dangling room id.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete room failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "room deleted", "room": room})
}
