package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskStore writes images to a local directory served under /images.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("image root is required")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create image root: %w", err)
	}

	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(_ context.Context, name string, _ string, data []byte) (string, error) {
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid image name %q", name)
	}

	if err := os.WriteFile(filepath.Join(s.root, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return path.Join("/images", name), nil
}

// Root reports the directory the store writes to, for static serving.
func (s *DiskStore) Root() string {
	return s.root
}
