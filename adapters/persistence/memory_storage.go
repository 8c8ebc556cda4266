package persistence

import (
	"context"
	"sync"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
)

// MemoryDocumentStorage keeps documents for the life of the process.
type MemoryDocumentStorage struct {
	mu    sync.RWMutex
	items map[string][]byte
	saves int
}

func NewMemoryDocumentStorage() *MemoryDocumentStorage {
	return &MemoryDocumentStorage{items: map[string][]byte{}}
}

func (s *MemoryDocumentStorage) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.items[key]
	if !ok {
		return nil, service.ErrDocumentNotFound
	}
	return append([]byte(nil), raw...), nil
}

func (s *MemoryDocumentStorage) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), data...)
	s.saves++
	return nil
}

// Saves reports how many writes reached the storage.
func (s *MemoryDocumentStorage) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
