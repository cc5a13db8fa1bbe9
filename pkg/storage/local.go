package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Local implements Storage on the local filesystem.
type Local struct {
	root string
}

// NewLocal creates a filesystem storage.
// Relative keys are resolved against root; an empty root means the working directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Get opens the file at key.
func (l *Local) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return f, nil
}

func (l *Local) path(key string) string {
	if l.root == "" || filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(l.root, key)
}

var _ Storage = (*Local)(nil)
