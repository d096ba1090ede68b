package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists binary payloads and returns a retrieval URL.
type FileStore interface {
	Put(name string, data []byte) (string, error)
}

// LocalFileStore writes uploads to a directory served statically under
// /uploads.
type LocalFileStore struct {
	dir string
}

func NewLocalFileStore(dir string) *LocalFileStore {
	return &LocalFileStore{dir: dir}
}

func (s *LocalFileStore) Put(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	dest := filepath.Join(s.dir, name)
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return "/uploads/" + name, nil
}
