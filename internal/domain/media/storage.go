package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// BlobStore holds uploaded file bytes keyed by stored name. Save must not
// leave a partial entry behind on failure; Remove of a missing entry is not
// an error.
type BlobStore interface {
	Save(ctx context.Context, name string, r io.Reader) (int64, error)
	Remove(ctx context.Context, name string) error
}

// DiskStore keeps blobs as plain files in one directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) Dir() string { return d.dir }

func (d *DiskStore) Save(ctx context.Context, name string, r io.Reader) (int64, error) {
	path := filepath.Join(d.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.Copy(dst, r)
	if err != nil {
		dst.Close()
		_ = os.Remove(path)
		return 0, fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("failed to flush file: %w", err)
	}

	return written, nil
}

func (d *DiskStore) Remove(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(d.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
