package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

// SubmissionRepo persists contact-form submissions.
type SubmissionRepo struct{ DB *sql.DB }

// NewSubmissionRepo returns a new SubmissionRepo bound to the given database.
func NewSubmissionRepo(db *sql.DB) *SubmissionRepo { return &SubmissionRepo{DB: db} }

const submissionColumns = `id, name, email, message, type, status, created_at`

func scanSubmission(row interface{ Scan(...any) error }) (model.Submission, error) {
	var s model.Submission
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Message, &s.Type, &s.Status, &s.CreatedAt)
	return s, err
}

// Create inserts a submission with status New.
func (r *SubmissionRepo) Create(ctx context.Context, sub *model.Submission) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO submissions (name, email, message, type, status) VALUES (?,?,?,?,?)`,
		sub.Name, sub.Email, sub.Message, sub.Type, sub.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	got, err := r.getByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*sub = got
	return nil
}

func (r *SubmissionRepo) getByID(ctx context.Context, id uint64) (model.Submission, error) {
	s, err := scanSubmission(r.DB.QueryRowContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Submission{}, ErrSubmissionNotFound
	}
	return s, err
}

// ListAll returns every submission, newest first.
func (r *SubmissionRepo) ListAll(ctx context.Context) ([]model.Submission, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+submissionColumns+` FROM submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	subs := make([]model.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// SetStatus marks a submission Read or Archived.
func (r *SubmissionRepo) SetStatus(ctx context.Context, id uint64, status model.SubmissionStatus) (model.Submission, error) {
	if _, err := r.DB.ExecContext(ctx,
		`UPDATE submissions SET status = ? WHERE id = ?`, status, id); err != nil {
		return model.Submission{}, err
	}
	return r.getByID(ctx, id)
}
