package httpapi

import (
	"errors"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avk1985/blog-api/internal/errs"
	"github.com/avk1985/blog-api/internal/model"
)

type commentRequest struct {
	Content string `json:"content"`
}

func commentPayload(cm *model.Comment) map[string]any {
	return map[string]any{
		"comment_id": cm.ID.String(),
		"content":    cm.Content,
		"username":   cm.Username,
		"user_id":    cm.UserID.String(),
		"post_id":    cm.PostID.String(),
		"created_at": cm.CreatedAt,
	}
}

func (s *Server) createComment(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Missing authorization header")
	}
	postID, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		return respondErr(c, http.StatusBadRequest, codeInvalidPostID, "Invalid post ID")
	}
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, codeBadRequest, "Malformed request body")
	}

	cm, err := s.comments.Create(c.Request().Context(), claims.UserID, postID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			return respondErr(c, http.StatusBadRequest, codeContentRequired, "Content is required")
		case errors.Is(err, errs.ErrNotFound):
			return respondErr(c, http.StatusBadRequest, codeCommentPostNotFound, "Post not found")
		default:
			s.log.Error("create comment failed", zap.Error(err))
			return respondErr(c, http.StatusInternalServerError, codeInternal, "Failed to create comment")
		}
	}
	return respondOK(c, "Comment created successfully", commentPayload(cm))
}

func (s *Server) listComments(c echo.Context) error {
	postID, err := uuid.FromString(c.Param("post_id"))
	if err != nil {
		return respondErr(c, http.StatusBadRequest, codeInvalidPostID, "Invalid post ID")
	}

	comments, err := s.comments.ListForPost(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return respondErr(c, http.StatusBadRequest, codeCommentPostNotFound, "Post not found")
		}
		s.log.Error("list comments failed", zap.Error(err))
		return respondErr(c, http.StatusInternalServerError, codeInternal, "Failed to get comments")
	}
	payload := make([]map[string]any, 0, len(comments))
	for i := range comments {
		payload = append(payload, commentPayload(&comments[i]))
	}
	return respondOK(c, "Comments retrieved successfully", payload)
}

func (s *Server) updateComment(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Missing authorization header")
	}
	commentID, err := uuid.FromString(c.Param("comment_id"))
	if err != nil {
		return respondErr(c, http.StatusBadRequest, codeInvalidCommentID, "Invalid comment ID")
	}
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, codeBadRequest, "Malformed request body")
	}

	cm, err := s.comments.Update(c.Request().Context(), claims.UserID, commentID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			return respondErr(c, http.StatusBadRequest, codeContentRequired, "Content is required")
		case errors.Is(err, errs.ErrForbidden):
			return respondErr(c, http.StatusBadRequest, codeCommentUpdateForbidden, "You are not authorized to update this comment.")
		case errors.Is(err, errs.ErrNotFound):
			return respondErr(c, http.StatusBadRequest, codeCommentNotFound, "Comment not found.")
		default:
			s.log.Error("update comment failed", zap.Error(err))
			return respondErr(c, http.StatusInternalServerError, codeInternal, "Failed to update comment")
		}
	}
	return respondOK(c, "Comment updated successfully", commentPayload(cm))
}

func (s *Server) deleteComment(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return respondErr(c, http.StatusUnauthorized, codeInvalidCredentials, "Missing authorization header")
	}
	commentID, err := uuid.FromString(c.Param("comment_id"))
	if err != nil {
		return respondErr(c, http.StatusBadRequest, codeInvalidCommentID, "Invalid comment ID")
	}

	if err := s.comments.Delete(c.Request().Context(), claims.UserID, commentID); err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			return respondErr(c, http.StatusBadRequest, codeCommentDeleteForbidden, "You are not authorized to delete this comment.")
		case errors.Is(err, errs.ErrNotFound):
			return respondErr(c, http.StatusBadRequest, codeCommentNotFound, "Comment not found.")
		default:
			s.log.Error("delete comment failed", zap.Error(err))
			return respondErr(c, http.StatusInternalServerError, codeInternal, "Failed to delete comment")
		}
	}
	return respondOK(c, "Comment deleted successfully", nil)
}
