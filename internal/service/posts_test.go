package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/avk1985/blog-api/internal/errs"
	"github.com/avk1985/blog-api/internal/model"
	"github.com/avk1985/blog-api/internal/repository"
	"github.com/avk1985/blog-api/internal/storage"
)

type fakePosts struct {
	byID map[uuid.UUID]*model.Post

	createErr error
}

var _ repository.PostRepository = (*fakePosts)(nil)

func (f *fakePosts) Create(_ context.Context, p *model.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byID == nil {
		f.byID = map[uuid.UUID]*model.Post{}
	}
	cpy := *p
	f.byID[p.ID] = &cpy
	return nil
}

func (f *fakePosts) GetByID(_ context.Context, id uuid.UUID) (*model.Post, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (f *fakePosts) List(_ context.Context, limit, offset int) ([]model.Post, error) {
	var out []model.Post
	for _, p := range f.byID {
		out = append(out, *p)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePosts) Update(_ context.Context, p *model.Post) error {
	if _, ok := f.byID[p.ID]; !ok {
		return errs.ErrNotFound
	}
	cpy := *p
	f.byID[p.ID] = &cpy
	return nil
}

func (f *fakePosts) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeImages struct {
	uploads []string
	deletes []string
	err     error
}

var _ storage.ImageStore = (*fakeImages)(nil)

func (f *fakeImages) Upload(_ context.Context, key, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	_, _ = io.Copy(io.Discard, r)
	f.uploads = append(f.uploads, key)
	return "https://cdn.test/" + key, nil
}

func (f *fakeImages) Delete(_ context.Context, url string) error {
	f.deletes = append(f.deletes, url)
	return nil
}

func seedUser(users *fakeUsers, name string) *model.User {
	u := &model.User{ID: uuid.Must(uuid.NewV4()), Username: name, Email: name + "@example.com"}
	users.byName[name] = u
	return u
}

func TestPosts_Create(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{byName: map[string]*model.User{}}
	posts := &fakePosts{byID: map[uuid.UUID]*model.Post{}}
	images := &fakeImages{}
	s := NewPostService(posts, users, images)
	ctx := context.Background()
	alice := seedUser(users, "alice")

	if _, err := s.Create(ctx, alice.ID, "", "", nil); !errors.Is(err, errs.ErrMissingFields) {
		t.Fatalf("want ErrMissingFields, got %v", err)
	}

	p, err := s.Create(ctx, alice.ID, "New Post", "This is a new post.", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Username != "alice" || p.ImageURL != "" {
		t.Fatalf("bad post: %+v", p)
	}

	withImg, err := s.Create(ctx, alice.ID, "Pic", "Look", &ImageUpload{
		Filename:    "cat.png",
		ContentType: "image/png",
		Data:        strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("Create with image: %v", err)
	}
	if withImg.ImageURL == "" {
		t.Fatalf("image URL not set")
	}
	if len(images.uploads) != 1 || !strings.HasSuffix(images.uploads[0], ".png") {
		t.Fatalf("unexpected uploads: %v", images.uploads)
	}

	// Unknown author.
	if _, err := s.Create(ctx, uuid.Must(uuid.NewV4()), "t", "c", nil); err == nil {
		t.Fatalf("want error for unknown author")
	}
}

func TestPosts_Create_ImageStoreDisabled(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{byName: map[string]*model.User{}}
	posts := &fakePosts{byID: map[uuid.UUID]*model.Post{}}
	s := NewPostService(posts, users, storage.Disabled{})
	alice := seedUser(users, "alice")

	_, err := s.Create(context.Background(), alice.ID, "t", "c", &ImageUpload{
		Filename: "x.png", Data: strings.NewReader("x"),
	})
	if !errors.Is(err, storage.ErrNotConfigured) {
		t.Fatalf("want ErrNotConfigured, got %v", err)
	}
}

func TestPosts_Update_OwnershipAndFields(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{byName: map[string]*model.User{}}
	posts := &fakePosts{byID: map[uuid.UUID]*model.Post{}}
	images := &fakeImages{}
	s := NewPostService(posts, users, images)
	ctx := context.Background()
	alice := seedUser(users, "alice")
	mallory := seedUser(users, "mallory")

	p, err := s.Create(ctx, alice.ID, "orig", "body", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := s.Update(ctx, alice.ID, p.ID, "", "", nil); !errors.Is(err, errs.ErrMissingFields) {
		t.Fatalf("want ErrMissingFields on empty update, got %v", err)
	}
	if _, err := s.Update(ctx, mallory.ID, p.ID, "hax", "", nil); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("want ErrForbidden for non-owner, got %v", err)
	}
	if _, err := s.Update(ctx, alice.ID, uuid.Must(uuid.NewV4()), "t", "", nil); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	upd, err := s.Update(ctx, alice.ID, p.ID, "new title", "", nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.Title != "new title" || upd.Content != "body" {
		t.Fatalf("partial update broken: %+v", upd)
	}
}

func TestPosts_Update_ReplacesImage(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{byName: map[string]*model.User{}}
	posts := &fakePosts{byID: map[uuid.UUID]*model.Post{}}
	images := &fakeImages{}
	s := NewPostService(posts, users, images)
	ctx := context.Background()
	alice := seedUser(users, "alice")

	p, err := s.Create(ctx, alice.ID, "t", "c", &ImageUpload{Filename: "a.png", Data: strings.NewReader("1")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	oldURL := p.ImageURL

	upd, err := s.Update(ctx, alice.ID, p.ID, "", "", &ImageUpload{Filename: "b.jpg", Data: strings.NewReader("2")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.ImageURL == oldURL {
		t.Fatalf("image URL not replaced")
	}
	if len(images.deletes) != 1 || images.deletes[0] != oldURL {
		t.Fatalf("old image not deleted: %v", images.deletes)
	}
}

func TestPosts_Delete(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{byName: map[string]*model.User{}}
	posts := &fakePosts{byID: map[uuid.UUID]*model.Post{}}
	images := &fakeImages{}
	s := NewPostService(posts, users, images)
	ctx := context.Background()
	alice := seedUser(users, "alice")
	mallory := seedUser(users, "mallory")

	p, err := s.Create(ctx, alice.ID, "t", "c", &ImageUpload{Filename: "a.png", Data: strings.NewReader("1")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(ctx, mallory.ID, p.ID); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
	if err := s.Delete(ctx, alice.ID, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, alice.ID, p.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
	if len(images.deletes) != 1 {
		t.Fatalf("post image not cleaned up: %v", images.deletes)
	}
}
