package service

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by DocumentStorage.Load when nothing is
// stored under the key.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStorage persists raw document JSON under a single key.
type DocumentStorage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
