package storage

import (
	"context"
	"fmt"

	"github.com/onu-facilities/parts-tracker/pkg/config"
)

// Backend is the pluggable snapshot medium. Load returns the last saved
// image (nil when none exists); Save replaces it wholesale.
type Backend interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}

// NewBackend builds the backend selected by configuration.
func NewBackend(ctx context.Context, cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case "file", "":
		return NewFileBackend(cfg.Path), nil
	case "sqlite":
		return NewSQLiteBackend(cfg.Path)
	case "postgres":
		return NewPostgresBackend(ctx, cfg.DatabaseURL)
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
