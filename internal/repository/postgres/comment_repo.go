package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/avk1985/blog-api/internal/errs"
	"github.com/avk1985/blog-api/internal/model"
)

// CommentRepo implements CommentRepository using PostgreSQL.
type CommentRepo struct{ db *DB }

// NewCommentRepo constructs a comment repository.
func NewCommentRepo(db *DB) *CommentRepo { return &CommentRepo{db: db} }

// Create inserts a new comment row.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	const q = `
INSERT INTO comments (id, content, username, user_id, post_id)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, c.ID, c.Content, c.Username, c.UserID, c.PostID)
	return err
}

// GetByID selects a comment by ID.
func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	const q = `
SELECT id, content, username, user_id, post_id, created_at, updated_at
FROM comments WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var c model.Comment
	if err := row.Scan(&c.ID, &c.Content, &c.Username, &c.UserID, &c.PostID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

// ListByPost selects all comments of a post, oldest first.
func (r *CommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	const q = `
SELECT id, content, username, user_id, post_id, created_at, updated_at
FROM comments WHERE post_id=$1 ORDER BY created_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.Username, &c.UserID, &c.PostID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Update rewrites the content of an existing comment.
func (r *CommentRepo) Update(ctx context.Context, c *model.Comment) error {
	const q = `
UPDATE comments SET content=$2, updated_at=now() WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, c.ID, c.Content)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a comment row.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM comments WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
