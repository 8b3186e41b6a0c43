// Package httpapi exposes the blog REST API over echo.
package httpapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/avk1985/blog-api/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	e        *echo.Echo
	auth     service.AuthService
	posts    service.PostService
	comments service.CommentService
	log      *zap.Logger
}

// New constructs the HTTP server with injected services and registers all
// routes under /api/v1.
func New(auth service.AuthService, posts service.PostService, comments service.CommentService, log *zap.Logger) *Server {
	s := &Server{
		e:        echo.New(),
		auth:     auth,
		posts:    posts,
		comments: comments,
		log:      log,
	}
	s.e.HideBanner = true
	s.e.HidePort = true
	s.e.Use(recoverPanic(log))
	s.e.Use(requestLogger(log))
	s.routes()
	return s
}

func (s *Server) routes() {
	v1 := s.e.Group("/api/v1")

	// public
	v1.POST("/register", s.register)
	v1.POST("/login", s.login)
	v1.GET("/home", s.listPosts)

	// authenticated
	p := v1.Group("", s.requireAuth)
	p.POST("/logout", s.logout)
	p.POST("/post", s.createPost)
	p.GET("/post/:post_id", s.getPost)
	p.PUT("/post/:post_id", s.updatePost)
	p.DELETE("/post/:post_id", s.deletePost)
	p.GET("/posts/:post_id/comments", s.listComments)
	p.POST("/posts/:post_id/comments", s.createComment)
	p.PUT("/comments/:comment_id", s.updateComment)
	p.DELETE("/comments/:comment_id", s.deleteComment)
}

// Handler exposes the root handler; used by tests.
func (s *Server) Handler() http.Handler { return s.e }

// Start listens on addr and serves until Shutdown.
func (s *Server) Start(addr string) error {
	err := s.e.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
