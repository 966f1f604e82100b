package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

// ApplicationRepo persists job applications.
type ApplicationRepo struct{ DB *sql.DB }

// NewApplicationRepo returns a new ApplicationRepo bound to the given database.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{DB: db} }

const applicationColumns = `id, job_id, name, email, phone, cover_letter, cv_path, status, created_at, updated_at`

func scanApplication(row interface{ Scan(...any) error }) (model.Application, error) {
	var a model.Application
	var cover sql.NullString
	err := row.Scan(&a.ID, &a.JobID, &a.Name, &a.Email, &a.Phone, &cover,
		&a.CVPath, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if cover.Valid {
		a.CoverLetter = cover.String
	}
	return a, err
}

// Create inserts an application with status Pending and returns it with
// generated fields.
func (r *ApplicationRepo) Create(ctx context.Context, app *model.Application) error {
	var cover any
	if app.CoverLetter != "" {
		cover = app.CoverLetter
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO applications (job_id, name, email, phone, cover_letter, cv_path, status)
		 VALUES (?,?,?,?,?,?,?)`,
		app.JobID, app.Name, app.Email, app.Phone, cover, app.CVPath, app.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*app = got
	return nil
}

// GetByID fetches an application or returns ErrApplicationNotFound.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uint64) (model.Application, error) {
	a, err := scanApplication(r.DB.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Application{}, ErrApplicationNotFound
	}
	return a, err
}

// ApplicationEntry is an application with its job title joined in.  The
// title is a pointer because the posting may have been deleted.
type ApplicationEntry struct {
	model.Application
	JobTitle *string `json:"job_title"`
}

// ListAll returns every application, newest first, with job titles.
func (r *ApplicationRepo) ListAll(ctx context.Context) ([]ApplicationEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT a.id, a.job_id, a.name, a.email, a.phone, a.cover_letter, a.cv_path,
		        a.status, a.created_at, a.updated_at, j.title
		 FROM applications a
		 LEFT JOIN jobs j ON j.id = a.job_id
		 ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]ApplicationEntry, 0)
	for rows.Next() {
		var e ApplicationEntry
		var cover, title sql.NullString
		if err := rows.Scan(&e.ID, &e.JobID, &e.Name, &e.Email, &e.Phone, &cover,
			&e.CVPath, &e.Status, &e.CreatedAt, &e.UpdatedAt, &title); err != nil {
			return nil, err
		}
		if cover.Valid {
			e.CoverLetter = cover.String
		}
		if title.Valid {
			e.JobTitle = &title.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SetStatus advances an application through the review pipeline.
func (r *ApplicationRepo) SetStatus(ctx context.Context, id uint64, status model.ApplicationStatus) (model.Application, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE applications SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return model.Application{}, err
	}
	if n, err2 := res.RowsAffected(); err2 == nil && n == 0 {
		return model.Application{}, ErrApplicationNotFound
	}
	return r.GetByID(ctx, id)
}
