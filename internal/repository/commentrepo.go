package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avk1985/blog-api/internal/model"
)

// CommentRepository provides CRUD access for comments.
type CommentRepository interface {
	// Create inserts a new comment.
	Create(ctx context.Context, c *model.Comment) error
	// GetByID loads a comment by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	// ListByPost returns all comments of a post, oldest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
	// Update rewrites the content of an existing comment.
	Update(ctx context.Context, c *model.Comment) error
	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}
