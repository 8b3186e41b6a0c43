// Package token issues and verifies signed HS256 access tokens.
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/avk1985/blog-api/internal/errs"
	"github.com/avk1985/blog-api/internal/model"
)

// parse-time leeway, tolerates minor clock skew between replicas
const leeway = 30 * time.Second

// Issuer creates and verifies bearer tokens. Every issued token carries a
// unique jti claim which later serves as the revocation key.
type Issuer struct {
	signKey []byte
}

// NewIssuer constructs an Issuer with the given HS256 signing key.
func NewIssuer(signKey []byte) *Issuer {
	return &Issuer{signKey: signKey}
}

// Issue creates a signed JWT for the given subject with the given TTL.
// The returned claims hold the jti and expiry needed for logout.
func (i *Issuer) Issue(userID uuid.UUID, ttl time.Duration) (string, model.TokenClaims, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", model.TokenClaims{}, err
	}
	now := time.Now()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        jti.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.signKey)
	if err != nil {
		return "", model.TokenClaims{}, err
	}
	return signed, model.TokenClaims{UserID: userID, JTI: jti.String(), ExpiresAt: exp}, nil
}

// Parse verifies signature and time bounds and extracts the claims.
// Any failure maps to errs.ErrBadToken; callers never see parser internals.
func (i *Issuer) Parse(tokenString string) (model.TokenClaims, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return i.signKey, nil
	}, jwt.WithLeeway(leeway))
	if err != nil || !parsed.Valid {
		return model.TokenClaims{}, errs.ErrBadToken
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return model.TokenClaims{}, errs.ErrBadToken
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return model.TokenClaims{}, errs.ErrBadToken
	}
	return model.TokenClaims{UserID: userID, JTI: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}
