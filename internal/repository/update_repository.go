package repository

import (
	"context"
	"database/sql"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

// UpdateRepo persists staff noticeboard posts.
type UpdateRepo struct{ DB *sql.DB }

// NewUpdateRepo returns a new UpdateRepo bound to the given database.
func NewUpdateRepo(db *sql.DB) *UpdateRepo { return &UpdateRepo{DB: db} }

// Create inserts a post and populates its generated ID.
func (r *UpdateRepo) Create(ctx context.Context, up *model.Update) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO updates (author_id, title, body) VALUES (?,?,?)`,
		up.AuthorID, up.Title, up.Body)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	up.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		`SELECT created_at FROM updates WHERE id = ?`, up.ID).Scan(&up.CreatedAt)
}

// ListRecent returns the latest posts with author names, newest first.
func (r *UpdateRepo) ListRecent(ctx context.Context, limit int) ([]model.Update, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT u.id, u.author_id, COALESCE(a.name, ''), u.title, u.body, u.created_at
		 FROM updates u
		 LEFT JOIN users a ON a.id = u.author_id
		 ORDER BY u.created_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	updates := make([]model.Update, 0)
	for rows.Next() {
		var u model.Update
		if err := rows.Scan(&u.ID, &u.AuthorID, &u.AuthorName, &u.Title, &u.Body, &u.CreatedAt); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, rows.Err()
}
