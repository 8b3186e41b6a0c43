// Command blog-server starts the blog REST API server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/avk1985/blog-api/internal/config"
	"github.com/avk1985/blog-api/internal/migrate"
	"github.com/avk1985/blog-api/internal/repository/postgres"
	"github.com/avk1985/blog-api/internal/revoke"
	"github.com/avk1985/blog-api/internal/server/httpapi"
	"github.com/avk1985/blog-api/internal/service"
	"github.com/avk1985/blog-api/internal/storage"
	s3store "github.com/avk1985/blog-api/internal/storage/s3"
	"github.com/avk1985/blog-api/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, and starts the HTTP server.
func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", *addr),
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	postRepo := postgres.NewPostRepo(db)
	commentRepo := postgres.NewCommentRepo(db)

	// Revocation store: process-local by default; redis-backed when a
	// shared registry across replicas is wanted.
	var revoked revoke.Store = revoke.NewRegistry()
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("redis.ParseURL", zap.Error(err))
		}
		revoked = revoke.NewRedisStore(redis.NewClient(opt))
		logger.Info("using redis revocation store")
	}

	// Image storage
	var images storage.ImageStore = storage.Disabled{}
	if cfg.S3Bucket != "" {
		images, err = s3store.New(ctx, s3store.Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			BaseURL:        cfg.S3BaseURL,
			ForcePathStyle: cfg.S3ForcePathStyle,
		})
		if err != nil {
			logger.Fatal("s3 storage", zap.Error(err))
		}
		logger.Info("image uploads enabled", zap.String("bucket", cfg.S3Bucket))
	}

	// Services
	issuer := token.NewIssuer([]byte(cfg.JWTKey))
	authSvc := service.NewAuthService(userRepo, issuer, revoked, cfg.RegisterTokenTTL, cfg.LoginTokenTTL)
	postSvc := service.NewPostService(postRepo, userRepo, images)
	commentSvc := service.NewCommentService(commentRepo, postRepo, userRepo)

	srv := httpapi.New(authSvc, postSvc, commentSvc, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", *addr))
		errCh <- srv.Start(*addr)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
