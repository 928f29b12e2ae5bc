package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore is a filesystem-backed implementation of Store. Assets are
// written below a fixed root path; the content type is not persisted, the
// serving layer derives it from the file extension.
type DiskStore struct {
	rootPath string
}

// NewDiskStore creates a DiskStore rooted at rootPath, creating the
// directory if needed.
func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob root %s: %w", rootPath, err)
	}
	return &DiskStore{
		rootPath: rootPath,
	}, nil
}

// Put writes the content to disk under the given name. Parent directories
// are created as needed; an existing asset with the same name is replaced.
func (s *DiskStore) Put(_ context.Context, name, _ string, content io.Reader) error {
	fullPath := filepath.Join(s.rootPath, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create blob %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", name, err)
	}
	return nil
}
