package httpapi

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avk1985/blog-api/internal/model"
)

const claimsContextKey = "auth.claims"

// requireAuth authenticates the request: it extracts the bearer token,
// verifies signature and expiry, and consults the revocation registry. A
// revoked token is rejected exactly like a forged one.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if tok == "" {
			return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Missing authorization header")
		}
		claims, err := s.auth.Validate(c.Request().Context(), tok)
		if err != nil {
			return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Invalid or expired token")
		}
		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// claimsFrom fetches the verified claims stored by requireAuth.
func claimsFrom(c echo.Context) (model.TokenClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(model.TokenClaims)
	return claims, ok
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// requestLogger logs one structured line per request: metadata only,
// never payloads.
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			log.Info("http",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("dur", time.Since(start)),
				zap.String("remote", c.RealIP()),
			)
			return nil
		}
	}
}

// recoverPanic converts handler panics into a generic internal error so no
// stack detail reaches the client.
func recoverPanic(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("panic",
						zap.Any("reason", r),
						zap.ByteString("stack", debug.Stack()),
						zap.String("path", c.Request().URL.Path),
					)
					err = respondErr(c, http.StatusInternalServerError, codeInternal, "Internal server error")
				}
			}()
			return next(c)
		}
	}
}
