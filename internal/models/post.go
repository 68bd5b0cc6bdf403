package models

import "time"

// Post is a blog entry owned by exactly one user. AuthorID is set at
// creation and never reassigned; only title and body are mutable.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
