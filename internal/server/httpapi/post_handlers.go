package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avk1985/blog-api/internal/errs"
	"github.com/avk1985/blog-api/internal/model"
	"github.com/avk1985/blog-api/internal/service"
)

type postRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

func postPayload(p *model.Post) map[string]any {
	var imageURL any
	if p.ImageURL != "" {
		imageURL = p.ImageURL
	}
	return map[string]any{
		"post_id":    p.ID.String(),
		"title":      p.Title,
		"content":    p.Content,
		"username":   p.Username,
		"image_url":  imageURL,
		"user_id":    p.UserID.String(),
		"created_at": p.CreatedAt,
	}
}

// bindPostRequest accepts JSON bodies and multipart forms; the latter may
// carry an image file under the "image" field.
func bindPostRequest(c echo.Context) (postRequest, *service.ImageUpload, error) {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return postRequest{}, nil, err
	}

	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return req, nil, nil
	}
	fh, err := c.FormFile("image")
	if err != nil {
		// no image attached
		return req, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return postRequest{}, nil, err
	}
	// file is closed when the request body is; echo owns the temp file
	return req, &service.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        f,
	}, nil
}

func (s *Server) createPost(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Missing authorization header")
	}
	req, image, err := bindPostRequest(c)
	if err != nil {
		return respondErr(c, http.StatusBadRequest, codeBadRequest, "Malformed request body")
	}

	p, err := s.posts.Create(c.Request().Context(), claims.UserID, req.Title, req.Content, image)
	if err != nil {
		if errors.Is(err, errs.ErrMissingFields) {
			return respondErr(c, http.StatusBadRequest, codeContentRequired, "Title and content are required")
		}
		s.log.Error("create post failed", zap.Error(err))
		return respondErr(c, http.StatusInternalServerError, codeInternal, "Failed to create post")
	}
	return respondOK(c, "Post created successfully", postPayload(p))
}

func (s *Server) getPost(c echo.Context) error {
	postID, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		return respondErr(c, http.StatusBadRequest, codeInvalidPostID, "Invalid post ID")
	}
	p, err := s.posts.Get(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return respondErr(c, http.StatusBadRequest, codePostNotFound, "Post not found")
		}
		s.log.Error("get post failed", zap.Error(err))
		return respondErr(c, http.StatusInternalServerError, codeInternal, "Failed to get post")
	}
	return respondOK(c, "Post retrieved successfully", postPayload(p))
}

func (s *Server) listPosts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	posts, err := s.posts.List(c.Request().Context(), limit, offset)
	if err != nil {
		s.log.Error("list posts failed", zap.Error(err))
		return respondErr(c, http.StatusInternalServerError, codeInternal, "Failed to get posts")
	}
	payload := make([]map[string]any, 0, len(posts))
	for i := range posts {
		payload = append(payload, postPayload(&posts[i]))
	}
	return respondOK(c, "Posts retrieved successfully", payload)
}

func (s *Server) updatePost(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Missing authorization header")
	}
	postID, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		return respondErr(c, http.StatusBadRequest, codeInvalidPostID, "Invalid post ID")
	}
	req, image, err := bindPostRequest(c)
	if err != nil {
		return respondErr(c, http.StatusBadRequest, codeBadRequest, "Malformed request body")
	}

	p, err := s.posts.Update(c.Request().Context(), claims.UserID, postID, req.Title, req.Content, image)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			return respondErr(c, http.StatusBadRequest, codeContentRequired, "Title, content, or image is required.")
		case errors.Is(err, errs.ErrForbidden):
			return respondErr(c, http.StatusBadRequest, codePostUpdateForbidden, "You are not authorized to update this post.")
		case errors.Is(err, errs.ErrNotFound):
			return respondErr(c, http.StatusBadRequest, codePostNotFound, "Post not found")
		default:
			s.log.Error("update post failed", zap.Error(err))
			return respondErr(c, http.StatusInternalServerError, codeInternal, "Failed to update post")
		}
	}
	return respondOK(c, "Post updated successfully", postPayload(p))
}

func (s *Server) deletePost(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Missing authorization header")
	}
	postID, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		return respondErr(c, http.StatusBadRequest, codeInvalidPostID, "Invalid post ID")
	}

	if err := s.posts.Delete(c.Request().Context(), claims.UserID, postID); err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			return respondErr(c, http.StatusBadRequest, codePostDeleteForbidden, "You are not authorized to delete this post.")
		case errors.Is(err, errs.ErrNotFound):
			return respondErr(c, http.StatusBadRequest, codePostNotFound, "Post not found")
		default:
			s.log.Error("delete post failed", zap.Error(err))
			return respondErr(c, http.StatusInternalServerError, codeInternal, "Failed to delete post")
		}
	}
	return respondOK(c, "Post deleted successfully", nil)
}
