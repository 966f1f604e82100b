package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/repository"
)

// UpdateHandler manages internal announcements shown on the staff
// dashboard.
type UpdateHandler struct {
	Updates *repository.UpdateRepo
}

func NewUpdateHandler(u *repository.UpdateRepo) *UpdateHandler {
	return &UpdateHandler{Updates: u}
}

type updateReq struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Create posts an announcement.  Admin only; the author is the caller.
func (h *UpdateHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)
	if req.Title == "" || req.Body == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/body required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	up := model.Update{AuthorID: uid, Title: req.Title, Body: req.Body}
	if err := h.Updates.Create(ctx, &up); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create update failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "update posted", "update": up})
}

// ListRecent returns the latest announcements.  Staff only.
func (h *UpdateHandler) ListRecent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Updates.ListRecent(ctx, recentUpdates)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updates": list})
}
