package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/repository"
)

// SubmissionHandler handles the public contact form and the admin
// inbox for inquiries and feedback.
type SubmissionHandler struct {
	Submissions *repository.SubmissionRepo
}

func NewSubmissionHandler(s *repository.SubmissionRepo) *SubmissionHandler {
	return &SubmissionHandler{Submissions: s}
}

type submissionReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Create accepts a contact form submission.  Public.
func (h *SubmissionHandler) Create(c echo.Context) error {
	var req submissionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/message required"})
	}
	subType := model.SubmissionType(strings.TrimSpace(req.Type))
	if subType == "" {
		subType = model.SubmissionInquiry
	}
	if !subType.IsValid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid submission type"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sub := model.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Type:    subType,
		Status:  model.SubmissionNew,
	}
	if err := h.Submissions.Create(ctx, &sub); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "submission received", "submission": sub})
}

// ListAll returns every submission, newest first.  Admin only.
func (h *SubmissionHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	subs, err := h.Submissions.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"submissions": subs})
}

type submissionStatusReq struct {
	Status string `json:"status"`
}

// SetStatus moves a submission through the inbox workflow.  Admin only.
func (h *SubmissionHandler) SetStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req submissionStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := model.SubmissionStatus(strings.TrimSpace(req.Status))
	if !status.IsValid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid submission status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sub, err := h.Submissions.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "submission not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "submission updated", "submission": sub})
}
