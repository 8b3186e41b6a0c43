package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/avk1985/blog-api/internal/errs"
	"github.com/avk1985/blog-api/internal/model"
	"github.com/avk1985/blog-api/internal/repository"
)

// CommentService defines comment operations. Update and delete require the
// caller to be the comment's author.
type CommentService interface {
	Create(ctx context.Context, userID, postID uuid.UUID, content string) (*model.Comment, error)
	ListForPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
	Update(ctx context.Context, userID, commentID uuid.UUID, content string) (*model.Comment, error)
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
}

type CommentServiceImpl struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

// NewCommentService constructs CommentService with required dependencies.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository) *CommentServiceImpl {
	return &CommentServiceImpl{comments: comments, posts: posts, users: users}
}

// Create attaches a new comment to an existing post.
func (s *CommentServiceImpl) Create(ctx context.Context, userID, postID uuid.UUID, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errs.ErrMissingFields
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load author: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	c := &model.Comment{
		ID:       id,
		Content:  content,
		Username: author.Username,
		UserID:   userID,
		PostID:   postID,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// ListForPost returns all comments of an existing post, oldest first.
func (s *CommentServiceImpl) ListForPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID)
}

// Update rewrites the caller's comment.
func (s *CommentServiceImpl) Update(ctx context.Context, userID, commentID uuid.UUID, content string) (*model.Comment, error) {
	if content == "" {
		return nil, errs.ErrMissingFields
	}
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, errs.ErrForbidden
	}
	c.Content = content
	if err := s.comments.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

// Delete removes the caller's comment.
func (s *CommentServiceImpl) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return errs.ErrForbidden
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
