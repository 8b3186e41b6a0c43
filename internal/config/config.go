// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start. A .env file in the
// working directory is honored but never required.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTKey      string `env:"JWT_KEY,required"`

	// Registration auto-login tokens are intentionally shorter-lived
	// than explicit login tokens.
	RegisterTokenTTL time.Duration `env:"REGISTER_TOKEN_TTL" envDefault:"30m"`
	LoginTokenTTL    time.Duration `env:"LOGIN_TOKEN_TTL" envDefault:"120m"`

	// When set, revocations are shared across replicas through redis
	// instead of the process-local registry.
	RedisURL string `env:"REDIS_URL"`

	// Image storage; posts carry no images when the bucket is unset.
	S3Bucket         string `env:"S3_BUCKET"`
	S3Region         string `env:"S3_REGION"`
	S3AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"S3_SECRET_KEY"`
	S3Endpoint       string `env:"S3_ENDPOINT"`
	S3BaseURL        string `env:"S3_BASE_URL"`
	S3ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
