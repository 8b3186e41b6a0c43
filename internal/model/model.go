// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents an account. The raw password is never stored; only the
// Argon2id hash and the per-user salt it was derived with.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique
	Email     string    // unique
	PwdHash   []byte    // Argon2id(password, SaltAuth)
	SaltAuth  []byte    // per-user auth salt
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Post is a blog entry. ImageURL is empty when no image was attached.
type Post struct {
	ID        uuid.UUID // PK
	Title     string
	Content   string
	Username  string    // denormalized author name for feed rendering
	ImageURL  string    // public URL of the uploaded image, "" if none
	UserID    uuid.UUID // FK -> users.id
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment is attached to a single post.
type Comment struct {
	ID        uuid.UUID // PK
	Content   string
	Username  string    // denormalized author name
	UserID    uuid.UUID // FK -> users.id
	PostID    uuid.UUID // FK -> posts.id
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TokenClaims is the verified content of a presented access token.
// JTI is the revocation key; ExpiresAt bounds how long a revocation
// entry for this token has to be kept.
type TokenClaims struct {
	UserID    uuid.UUID
	JTI       string
	ExpiresAt time.Time
}

// AuthResult is returned by register/login with a freshly issued token.
type AuthResult struct {
	UserID      uuid.UUID
	Username    string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}
