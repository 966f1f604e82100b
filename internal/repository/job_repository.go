package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

// JobRepo persists job postings for the careers page.
type JobRepo struct{ DB *sql.DB }

// NewJobRepo returns a new JobRepo bound to the given database.
func NewJobRepo(db *sql.DB) *JobRepo { return &JobRepo{DB: db} }

const jobColumns = `id, title, location, type, description, status, created_at, updated_at`

func scanJob(row interface{ Scan(...any) error }) (model.Job, error) {
	var j model.Job
	err := row.Scan(&j.ID, &j.Title, &j.Location, &j.Type, &j.Description,
		&j.Status, &j.CreatedAt, &j.UpdatedAt)
	return j, err
}

// Create inserts a posting and returns it with generated fields.
func (r *JobRepo) Create(ctx context.Context, job *model.Job) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO jobs (title, location, type, description, status) VALUES (?,?,?,?,?)`,
		job.Title, job.Location, job.Type, job.Description, job.Status)
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
	*job = got
	return nil
}

// GetByID fetches a posting or returns ErrJobNotFound.
func (r *JobRepo) GetByID(ctx context.Context, id uint64) (model.Job, error) {
	j, err := scanJob(r.DB.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Job{}, ErrJobNotFound
	}
	return j, err
}

// ListOpen returns postings visible on the public careers page.
func (r *JobRepo) ListOpen(ctx context.Context) ([]model.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE status = ? ORDER BY created_at DESC`, model.JobOpen)
}

// ListAll returns every posting for the admin view.
func (r *JobRepo) ListAll(ctx context.Context) ([]model.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
}

func (r *JobRepo) list(ctx context.Context, query string, args ...any) ([]model.Job, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	jobs := make([]model.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Update rewrites the editable fields of a posting.
func (r *JobRepo) Update(ctx context.Context, id uint64, title, location string, jobType model.EmploymentType, description string, status model.JobStatus) (model.Job, error) {
	if _, err := r.DB.ExecContext(ctx,
		`UPDATE jobs SET title = ?, location = ?, type = ?, description = ?, status = ? WHERE id = ?`,
		title, location, jobType, description, status, id); err != nil {
		return model.Job{}, err
	}
	return r.GetByID(ctx, id)
}

// SetStatus changes only the posting status, e.g. marking it Filled
// after a hire.
func (r *JobRepo) SetStatus(ctx context.Context, id uint64, status model.JobStatus) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE jobs SET status = ? WHERE id = ?`, status, id)
	return err
}
