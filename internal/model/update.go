package model

import "time"

// Update is a staff noticeboard post shown on the staff dashboard.
// AuthorName is populated from the users table when listing.
type Update struct {
	ID         uint64    `json:"id"`
	AuthorID   uint64    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
