// Package storage abstracts where uploaded post images live.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotConfigured is returned when an upload is attempted but no image
// backend was configured for this deployment.
var ErrNotConfigured = errors.New("image storage not configured")

// ImageStore persists uploaded images and serves back a public URL.
type ImageStore interface {
	// Upload stores the image under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	// Delete removes a previously uploaded image by its public URL.
	// Best-effort: callers may ignore the error.
	Delete(ctx context.Context, url string) error
}

// Disabled is the ImageStore used when no backend is configured.
// Uploads fail with ErrNotConfigured, deletes are silently dropped.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Delete(context.Context, string) error { return nil }
