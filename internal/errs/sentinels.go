// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation at the store layer.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUsernameTaken indicates the requested username is already registered.
	ErrUsernameTaken = errors.New("username taken")

	// ErrEmailTaken indicates the requested email is already registered.
	ErrEmailTaken = errors.New("email taken")

	// ErrMissingFields indicates required registration fields are absent or empty.
	ErrMissingFields = errors.New("missing fields")

	// ErrInvalidEmail indicates the email does not match local@domain.tld shape.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrWeakPassword indicates the password fails the strength policy.
	ErrWeakPassword = errors.New("weak password")

	// ErrInvalidCredentials indicates failed authentication. The same value is
	// returned for an unknown username and a wrong password so callers cannot
	// enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden indicates the caller does not own the resource being mutated.
	ErrForbidden = errors.New("forbidden")

	// ErrBadToken indicates a malformed, expired, revoked or otherwise
	// unverifiable access token.
	ErrBadToken = errors.New("bad token")
)
