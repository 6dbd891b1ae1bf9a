package partition

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalBucket keeps objects as files below Root.
type LocalBucket struct {
	Root string
}

func NewLocalBucket(root string) *LocalBucket {
	return &LocalBucket{Root: root}
}

func (b *LocalBucket) path(key string) string {
	return filepath.Join(b.Root, filepath.FromSlash(key))
}

func (b *LocalBucket) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrObjectNotExist
	}
	return data, err
}

func (b *LocalBucket) Write(_ context.Context, key string, data []byte) error {
	p := b.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

func (b *LocalBucket) Create(_ context.Context, key string, data []byte) (bool, error) {
	p := b.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return false, err
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}

func (b *LocalBucket) Exists(_ context.Context, key string) (bool, error) {
	_, err := os.Stat(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ Bucket = (*LocalBucket)(nil)
