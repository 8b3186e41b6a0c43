package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/avk1985/blog-api/internal/errs"
	"github.com/avk1985/blog-api/internal/model"
)

// PostRepo implements PostRepository using PostgreSQL.
type PostRepo struct{ db *DB }

// NewPostRepo constructs a post repository.
func NewPostRepo(db *DB) *PostRepo { return &PostRepo{db: db} }

// Create inserts a new post row.
func (r *PostRepo) Create(ctx context.Context, p *model.Post) error {
	const q = `
INSERT INTO posts (id, title, content, username, image_url, user_id)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Pool.Exec(ctx, q, p.ID, p.Title, p.Content, p.Username, p.ImageURL, p.UserID)
	return err
}

// GetByID selects a post by ID.
func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	const q = `
SELECT id, title, content, username, image_url, user_id, created_at, updated_at
FROM posts WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var p model.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Username, &p.ImageURL, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &p, nil
}

// List selects posts newest-first with limit/offset paging.
func (r *PostRepo) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	const q = `
SELECT id, title, content, username, image_url, user_id, created_at, updated_at
FROM posts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Username, &p.ImageURL, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update rewrites mutable columns of an existing post.
func (r *PostRepo) Update(ctx context.Context, p *model.Post) error {
	const q = `
UPDATE posts SET title=$2, content=$3, image_url=$4, updated_at=now()
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, p.ID, p.Title, p.Content, p.ImageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a post row. Comments cascade at the schema level.
func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM posts WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
