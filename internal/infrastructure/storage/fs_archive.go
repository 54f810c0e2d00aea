package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	apppkg "github.com/printhub/backend/internal/application/printing"
)

// Ensure FSLabelArchive implements LabelArchive
var _ apppkg.LabelArchive = (*FSLabelArchive)(nil)

// FSLabelArchive keeps label artifacts on the local filesystem. It serves
// single-node deployments that do not run object storage.
type FSLabelArchive struct {
	baseDir string
}

// NewFSLabelArchive creates a filesystem archive rooted at baseDir
func NewFSLabelArchive(baseDir string) (*FSLabelArchive, error) {
	if baseDir == "" {
		return nil, errors.New("archive directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &FSLabelArchive{baseDir: baseDir}, nil
}

// Store writes the artifact under the archive root. Keys may contain
// slashes; path traversal outside the root is rejected.
func (a *FSLabelArchive) Store(ctx context.Context, key, contentType string, data []byte) error {
	path, err := a.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create archive subdirectory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write label: %w", err)
	}
	return nil
}

// DownloadURL returns a file URL for the stored artifact. Filesystem
// artifacts do not expire, but the expiry contract is honored so callers
// treat both archive kinds uniformly.
func (a *FSLabelArchive) DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	path, err := a.resolve(key)
	if err != nil {
		return "", time.Time{}, err
	}
	if _, err := os.Stat(path); err != nil {
		return "", time.Time{}, fmt.Errorf("label not archived: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", time.Time{}, err
	}
	if expiresIn <= 0 {
		expiresIn = 15 * time.Minute
	}
	return "file://" + filepath.ToSlash(abs), time.Now().Add(expiresIn), nil
}

func (a *FSLabelArchive) resolve(key string) (string, error) {
	if key == "" {
		return "", errors.New("archive key is required")
	}
	path := filepath.Join(a.baseDir, filepath.FromSlash(key))
	base, err := filepath.Abs(a.baseDir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if abs != base && !strings.HasPrefix(abs, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive key %q escapes the archive root", key)
	}
	return path, nil
}
