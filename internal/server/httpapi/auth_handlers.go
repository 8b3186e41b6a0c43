package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"go.uber.org/zap"

	"github.com/avk1985/blog-api/internal/errs"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, codeBadRequest, "Malformed request body")
	}

	res, err := s.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			return respondErr(c, http.StatusBadRequest, codeMissingFields, "Please provide name, email, and password.")
		case errors.Is(err, errs.ErrInvalidEmail):
			return respondErr(c, http.StatusBadRequest, codeInvalidEmail, "Email format is invalid.")
		case errors.Is(err, errs.ErrWeakPassword):
			return respondErr(c, http.StatusBadRequest, codeWeakPassword, "Invalid field value: password.")
		case errors.Is(err, errs.ErrUsernameTaken), errors.Is(err, errs.ErrEmailTaken), errors.Is(err, errs.ErrAlreadyExists):
			return respondErr(c, http.StatusBadRequest, codeUserExists, "User already exists.")
		default:
			s.log.Error("register failed", zap.Error(err))
			return respondErr(c, http.StatusBadRequest, codeInternal, "Registration failed.")
		}
	}

	return respondOK(c, "User registered successfully.", map[string]any{
		"user_id":      res.UserID.String(),
		"username":     res.Username,
		"email":        res.Email,
		"access_token": res.AccessToken,
	})
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, codeBadRequest, "Malformed request body")
	}

	res, err := s.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Invalid credentials")
		}
		s.log.Error("login failed", zap.Error(err))
		return respondErr(c, http.StatusInternalServerError, codeInternal, "Login failed")
	}

	return respondOK(c, "User logged in successfully", map[string]any{
		"user_id":      res.UserID.String(),
		"username":     res.Username,
		"access_token": res.AccessToken,
	})
}

func (s *Server) logout(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Missing authorization header")
	}
	if err := s.auth.Logout(c.Request().Context(), claims); err != nil {
		s.log.Error("logout failed", zap.Error(err))
		return respondErr(c, http.StatusInternalServerError, codeInternal, "Logout failed")
	}
	return respondOK(c, "User logged out successfully", nil)
}
