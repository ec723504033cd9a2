// Package storage keeps report images in a blob store.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/heartmarshall/incident-desk/internal/config"
	"github.com/heartmarshall/incident-desk/internal/domain"
)

// Store is implemented by every blob backend.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// New builds the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.StorageDriverLocal:
		return NewLocal(cfg.LocalDir, logger)
	case config.StorageDriverS3:
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewS3(client, cfg.S3Bucket, cfg.S3Prefix, logger), nil
	}
	return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
}

// cleanKey rejects keys that could escape the store root.
func cleanKey(key string) (string, error) {
	k := strings.TrimSpace(key)
	if k == "" || strings.HasPrefix(k, "/") || strings.Contains(k, "\\") {
		return "", fmt.Errorf("storage: invalid key %q: %w", key, domain.ErrValidation)
	}
	cleaned := path.Clean(k)
	if cleaned != k || cleaned == "." || strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return "", fmt.Errorf("storage: invalid key %q: %w", key, domain.ErrValidation)
	}
	return cleaned, nil
}
