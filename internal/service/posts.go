package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/gofrs/uuid/v5"

	"github.com/avk1985/blog-api/internal/errs"
	"github.com/avk1985/blog-api/internal/model"
	"github.com/avk1985/blog-api/internal/repository"
	"github.com/avk1985/blog-api/internal/storage"
)

// ImageUpload carries an optional image attached to a post create/update.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// PostService defines blog post operations. Mutations require ownership:
// only the author may update or delete a post.
type PostService interface {
	Create(ctx context.Context, userID uuid.UUID, title, content string, image *ImageUpload) (*model.Post, error)
	Get(ctx context.Context, postID uuid.UUID) (*model.Post, error)
	List(ctx context.Context, limit, offset int) ([]model.Post, error)
	Update(ctx context.Context, userID, postID uuid.UUID, title, content string, image *ImageUpload) (*model.Post, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
}

type PostServiceImpl struct {
	posts  repository.PostRepository
	users  repository.UserRepository
	images storage.ImageStore
}

const defaultFeedLimit = 20

// NewPostService constructs PostService with required dependencies.
func NewPostService(posts repository.PostRepository, users repository.UserRepository, images storage.ImageStore) *PostServiceImpl {
	return &PostServiceImpl{posts: posts, users: users, images: images}
}

// Create persists a new post for the author, uploading the image first
// when one is attached.
func (s *PostServiceImpl) Create(ctx context.Context, userID uuid.UUID, title, content string, image *ImageUpload) (*model.Post, error) {
	if title == "" || content == "" {
		return nil, errs.ErrMissingFields
	}
	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load author: %w", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	var imageURL string
	if image != nil {
		imageURL, err = s.uploadImage(ctx, id, image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
	}

	p := &model.Post{
		ID:       id,
		Title:    title,
		Content:  content,
		Username: author.Username,
		ImageURL: imageURL,
		UserID:   userID,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// Get loads a single post.
func (s *PostServiceImpl) Get(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	return s.posts.GetByID(ctx, postID)
}

// List returns the home feed, newest first.
func (s *PostServiceImpl) List(ctx context.Context, limit, offset int) ([]model.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.posts.List(ctx, limit, offset)
}

// Update rewrites the caller's post. At least one of title/content/image
// must be provided; omitted text fields keep their current values.
func (s *PostServiceImpl) Update(ctx context.Context, userID, postID uuid.UUID, title, content string, image *ImageUpload) (*model.Post, error) {
	if title == "" && content == "" && image == nil {
		return nil, errs.ErrMissingFields
	}
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, errs.ErrForbidden
	}

	if title != "" {
		p.Title = title
	}
	if content != "" {
		p.Content = content
	}
	if image != nil {
		url, err := s.uploadImage(ctx, p.ID, image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		if p.ImageURL != "" {
			_ = s.images.Delete(ctx, p.ImageURL) // best-effort
		}
		p.ImageURL = url
	}

	if err := s.posts.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

// Delete removes the caller's post and its image, if any.
func (s *PostServiceImpl) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return errs.ErrForbidden
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if p.ImageURL != "" {
		_ = s.images.Delete(ctx, p.ImageURL) // best-effort
	}
	return nil
}

func (s *PostServiceImpl) uploadImage(ctx context.Context, postID uuid.UUID, image *ImageUpload) (string, error) {
	key := "posts/" + postID.String() + path.Ext(image.Filename)
	ct := image.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return s.images.Upload(ctx, key, ct, image.Data)
}
