package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avk1985/blog-api/internal/model"
)

// PostRepository provides CRUD access for blog posts.
type PostRepository interface {
	// Create inserts a new post.
	Create(ctx context.Context, p *model.Post) error
	// GetByID loads a post by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	// List returns posts ordered newest-first.
	List(ctx context.Context, limit, offset int) ([]model.Post, error)
	// Update rewrites title, content and image URL of an existing post.
	Update(ctx context.Context, p *model.Post) error
	// Delete removes a post; comments go with it via FK cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
