package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrInvalidPath = errors.New("invalid storage path")

// Storage is the backend the upload handler writes to.
// Paths are slash-separated and relative to the backend root.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, filePath string, reader io.Reader, contentType string) error

	// Delete removes a file by its path. Returns nil if the file doesn't exist.
	Delete(ctx context.Context, filePath string) error

	// Exists reports whether a file is present at the path.
	Exists(ctx context.Context, filePath string) (bool, error)

	// GetURL returns the public URL for a file given its logical path.
	GetURL(filePath string) string
}

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects a backend. LocalDir and LocalURL apply to the local driver,
// S3 to the s3 driver.
type Config struct {
	Driver   string
	LocalDir string
	LocalURL string
	S3       S3Config
}

// New builds the backend named by cfg.Driver. An empty driver means local.
func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		local, err := NewLocalStorage(cfg.LocalDir, cfg.LocalURL)
		if err != nil {
			return nil, err
		}
		return local, nil
	case DriverS3:
		s3, err := NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return s3, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
