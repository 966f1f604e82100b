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

// JobHandler manages the careers board: public listing of open
// positions, admin CRUD.
type JobHandler struct {
	Jobs *repository.JobRepo
}

func NewJobHandler(j *repository.JobRepo) *JobHandler {
	return &JobHandler{Jobs: j}
}

type jobReq struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (r *jobReq) validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return errors.New("title required")
	}
	if !model.EmploymentType(r.Type).IsValid() {
		return errors.New("invalid employment type")
	}
	if r.Status == "" {
		r.Status = string(model.JobOpen)
	}
	if !model.JobStatus(r.Status).IsValid() {
		return errors.New("invalid job status")
	}
	return nil
}

// ListOpen returns open positions.  Public.
func (h *JobHandler) ListOpen(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jobs, err := h.Jobs.ListOpen(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"jobs": jobs})
}

// Get returns one job posting.  Public.
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	job, err := h.Jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"job": job})
}

// ListAll returns every posting regardless of status.  Admin only.
func (h *JobHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jobs, err := h.Jobs.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"jobs": jobs})
}

// Create adds a job posting.  Admin only.
func (h *JobHandler) Create(c echo.Context) error {
	var req jobReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	job := model.Job{
		Title:       req.Title,
		Location:    req.Location,
		Type:        model.EmploymentType(req.Type),
		Description: req.Description,
		Status:      model.JobStatus(req.Status),
	}
	if err := h.Jobs.Create(ctx, &job); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create job failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "job created", "job": job})
}

// Update edits a job posting.  Admin only.
func (h *JobHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req jobReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	job, err := h.Jobs.Update(ctx, id, req.Title, req.Location, model.EmploymentType(req.Type), req.Description, model.JobStatus(req.Status))
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update job failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "job updated", "job": job})
}
