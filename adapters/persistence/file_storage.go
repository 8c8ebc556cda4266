package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
)

type fileDocumentStorage struct {
	dir string
}

// NewFileDocumentStorage keeps each key as <dir>/<key>.json.
func NewFileDocumentStorage(dir string) (service.DocumentStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &fileDocumentStorage{dir: dir}, nil
}

func (s *fileDocumentStorage) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key)+".json")
}

func (s *fileDocumentStorage) Load(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, service.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read %s: %w", s.path(key), err)
	}
	return raw, nil
}

// Save writes to a temp file and renames it over the old one so readers
// never see a partial document.
func (s *fileDocumentStorage) Save(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, filepath.Base(key)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("replace %s: %w", s.path(key), err)
	}
	return nil
}
