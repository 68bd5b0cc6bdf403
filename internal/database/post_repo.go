package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blogsite/internal/models"
)

var (
	ErrPostNotFound = errors.New("post not found")
	// ErrTitleRequired is returned when an update is attempted with an
	// empty title.
	ErrTitleRequired = errors.New("title is required")
)

// PostRepo handles post database operations
type PostRepo struct{}

// NewPostRepo creates a new post repository
func NewPostRepo() *PostRepo {
	return &PostRepo{}
}

// Create inserts a new post owned by authorID. Persistence failures are
// wrapped in ErrStorage so the handler can report them without crashing.
func (r *PostRepo) Create(authorID int64, title, body string) (int64, error) {
	createdAt := time.Now()

	result, err := DB.Exec(`
		INSERT INTO posts (title, body, author_id, created_at)
		VALUES (?, ?, ?, ?)
	`, title, body, authorID, createdAt)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return id, nil
}

// GetByID retrieves a post by ID
func (r *PostRepo) GetByID(id int64) (*models.Post, error) {
	post := &models.Post{}

	err := DB.QueryRow(`
		SELECT id, title, body, author_id, created_at
		FROM posts WHERE id = ?
	`, id).Scan(&post.ID, &post.Title, &post.Body, &post.AuthorID, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// List retrieves all posts, newest first. Rows are fully materialized
// before the connection returns to the pool.
func (r *PostRepo) List() ([]*models.Post, error) {
	return r.list(`
		SELECT id, title, body, author_id, created_at
		FROM posts ORDER BY created_at DESC, id DESC
	`)
}

// ListByAuthor retrieves all posts owned by authorID, newest first.
func (r *PostRepo) ListByAuthor(authorID int64) ([]*models.Post, error) {
	return r.list(`
		SELECT id, title, body, author_id, created_at
		FROM posts WHERE author_id = ? ORDER BY created_at DESC, id DESC
	`, authorID)
}

func (r *PostRepo) list(query string, args ...any) ([]*models.Post, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.AuthorID, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// Update overwrites a post's title and body. The author and creation
// time are immutable.
func (r *PostRepo) Update(id int64, title, body string) error {
	if title == "" {
		return ErrTitleRequired
	}

	result, err := DB.Exec(`
		UPDATE posts SET title = ?, body = ? WHERE id = ?
	`, title, body, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}

// Delete removes a post. Authorization is the caller's responsibility.
func (r *PostRepo) Delete(id int64) error {
	result, err := DB.Exec("DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}

	return nil
}
