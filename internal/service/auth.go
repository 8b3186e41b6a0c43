// Package service contains application services for authentication, posts and comments.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/avk1985/blog-api/internal/crypto"
	"github.com/avk1985/blog-api/internal/errs"
	"github.com/avk1985/blog-api/internal/model"
	"github.com/avk1985/blog-api/internal/repository"
	"github.com/avk1985/blog-api/internal/revoke"
	"github.com/avk1985/blog-api/internal/token"
)

// AuthService defines registration, authentication and session revocation.
type AuthService interface {
	// Register validates input, creates the account and issues an
	// auto-login token.
	Register(ctx context.Context, username, email, password string) (model.AuthResult, error)
	// Login authenticates by username/password and issues a fresh token.
	Login(ctx context.Context, username, password string) (model.AuthResult, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, claims model.TokenClaims) error
	// Validate verifies a bearer token string: signature, expiry and
	// revocation. Used by the request authentication middleware.
	Validate(ctx context.Context, tokenString string) (model.TokenClaims, error)
}

type AuthServiceImpl struct {
	users       repository.UserRepository
	issuer      *token.Issuer
	revoked     revoke.Store
	registerTTL time.Duration
	loginTTL    time.Duration
}

// NewAuthService constructs AuthService with required dependencies.
// registerTTL applies to the token issued with registration, loginTTL to
// explicit logins; the asymmetry is intentional.
func NewAuthService(users repository.UserRepository, issuer *token.Issuer, revoked revoke.Store, registerTTL, loginTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:       users,
		issuer:      issuer,
		revoked:     revoked,
		registerTTL: registerTTL,
		loginTTL:    loginTTL,
	}
}

// Register checks the field/uniqueness rules in order, short-circuiting on
// the first failure, then persists the user and issues a token.
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password string) (model.AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return model.AuthResult{}, errs.ErrMissingFields
	}
	if !validEmail(email) {
		return model.AuthResult{}, errs.ErrInvalidEmail
	}
	if !validPassword(password) {
		return model.AuthResult{}, errs.ErrWeakPassword
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return model.AuthResult{}, errs.ErrUsernameTaken
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return model.AuthResult{}, errs.ErrEmailTaken
	}

	uid, err := uuid.NewV4()
	if err != nil {
		return model.AuthResult{}, err
	}
	salt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return model.AuthResult{}, err
	}

	u := &model.User{
		ID:       uid,
		Username: username,
		Email:    email,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), salt),
		SaltAuth: salt,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// A concurrent registration may win the race between the
		// lookups above and the insert.
		if errors.Is(err, errs.ErrAlreadyExists) {
			return model.AuthResult{}, errs.ErrAlreadyExists
		}
		return model.AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	signed, claims, err := s.issuer.Issue(uid, s.registerTTL)
	if err != nil {
		return model.AuthResult{}, err
	}
	return model.AuthResult{
		UserID:      uid,
		Username:    username,
		Email:       email,
		AccessToken: signed,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}

// Login authenticates the user. An unknown username and a wrong password
// produce the same error so accounts cannot be enumerated.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (model.AuthResult, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), u.SaltAuth, u.PwdHash) {
		// lookup error masked as bad credentials
		return model.AuthResult{}, errs.ErrInvalidCredentials
	}

	signed, claims, err := s.issuer.Issue(u.ID, s.loginTTL)
	if err != nil {
		return model.AuthResult{}, err
	}
	return model.AuthResult{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		AccessToken: signed,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}

// Logout records the token's jti in the revocation store with the token's
// own expiry. Repeating a logout overwrites the same entry, so the call is
// idempotent.
func (s *AuthServiceImpl) Logout(ctx context.Context, claims model.TokenClaims) error {
	if claims.JTI == "" {
		return errs.ErrBadToken
	}
	return s.revoked.Revoke(ctx, claims.JTI, claims.ExpiresAt)
}

// Validate parses and verifies the token, then consults the revocation
// store. A revoked token fails exactly like one with a bad signature.
func (s *AuthServiceImpl) Validate(ctx context.Context, tokenString string) (model.TokenClaims, error) {
	claims, err := s.issuer.Parse(tokenString)
	if err != nil {
		return model.TokenClaims{}, err
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("revocation check: %w", err)
	}
	if revoked {
		return model.TokenClaims{}, errs.ErrBadToken
	}
	return claims, nil
}
