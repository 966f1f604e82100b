package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/config"
	"github.com/luxurystay/hotel-reservation/internal/model"
	"github.com/luxurystay/hotel-reservation/internal/repository"
)

// ApplicationHandler handles job applications: public submission and
// the admin review pipeline.  Processing an application as Hired
// provisions a staff account and marks the job Filled.
type ApplicationHandler struct {
	Cfg          config.Config
	Applications *repository.ApplicationRepo
	Jobs         *repository.JobRepo
	Users        *repository.UserRepo
}

func NewApplicationHandler(cfg config.Config, a *repository.ApplicationRepo, j *repository.JobRepo, u *repository.UserRepo) *ApplicationHandler {
	return &ApplicationHandler{Cfg: cfg, Applications: a, Jobs: j, Users: u}
}

type applyReq struct {
	JobID       uint64 `json:"job_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"cover_letter"`
	CVPath      string `json:"cv_path"`
}

// Apply submits an application for an open position.  Public.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	if req.JobID == 0 || req.Name == "" || req.Email == "" || req.Phone == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "job_id/name/email/phone required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	job, err := h.Jobs.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "job not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if job.Status != model.JobOpen {
		return c.JSON(http.StatusConflict, echo.Map{"error": "job is no longer open"})
	}

	app := model.Application{
		JobID:       req.JobID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		CVPath:      req.CVPath,
		Status:      model.ApplicationPending,
	}
	if err := h.Applications.Create(ctx, &app); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit application failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "application submitted", "application": app})
}

// ListAll returns every application with job titles.  Admin only.
func (h *ApplicationHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	apps, err := h.Applications.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"applications": apps})
}

type processReq struct {
	Status   string `json:"status"`
	Role     string `json:"role"`     // required when status is Hired
	Password string `json:"password"` // initial password for the new staff account
}

// Process advances an application through the review pipeline.  Hiring
// creates a staff account for the applicant with the given role and
// marks the job Filled.
func (h *ApplicationHandler) Process(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req processReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := model.ApplicationStatus(strings.TrimSpace(req.Status))
	if !status.IsValid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid application status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if status != model.ApplicationHired {
		app, err := h.Applications.SetStatus(ctx, id, status)
		if err != nil {
			if errors.Is(err, repository.ErrApplicationNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "application not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "application updated", "application": app})
	}

	// Hiring path.
	role := model.Role(strings.TrimSpace(req.Role))
	if !role.IsStaff() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "a staff role is required to hire"})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "an initial password is required to hire"})
	}

	app, err := h.Applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "application not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if app.Status == model.ApplicationHired {
		return c.JSON(http.StatusConflict, echo.Map{"error": "application already hired"})
	}

	job, err := h.Jobs.GetByID(ctx, app.JobID)
	if err != nil && !errors.Is(err, repository.ErrJobNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	now := time.Now().UTC()
	staff := model.StaffDetails{Title: job.Title, HireDate: &now}
	uid, err := h.Users.Create(ctx, app.Name, app.Email, req.Password, role, staff, h.Cfg.BcryptCost)
	switch {
	case err == nil:
		// fresh staff account
	case errors.Is(err, repository.ErrEmailExists):
		// applicant already has an account; promote it instead
		u, gerr := h.Users.GetByEmail(ctx, app.Email)
		if gerr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hire failed"})
		}
		uid = u.ID
		if herr := h.Users.SetHiredAsStaff(ctx, uid, role, job.Title, ""); herr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hire failed"})
		}
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hire failed"})
	}

	if job.ID != 0 {
		if err := h.Jobs.SetStatus(ctx, job.ID, model.JobFilled); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hire failed"})
		}
	}

	app, err = h.Applications.SetStatus(ctx, id, model.ApplicationHired)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "applicant hired",
		"application": app,
		"user":        u,
	})
}
