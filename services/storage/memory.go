package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStorage is an in-process StorageService for development and tests.
// URLs are synthesized; the bytes are kept so tests can assert on them.
type MemoryStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

func (s *MemoryStorage) UploadImage(ctx context.Context, folder, name string, data []byte) (string, error) {
	key := folder + "/" + name
	s.mu.Lock()
	s.blobs[key] = append([]byte{}, data...)
	s.mu.Unlock()
	return fmt.Sprintf("mem://%s", key), nil
}

func (s *MemoryStorage) DeleteImage(ctx context.Context, publicID string) error {
	s.mu.Lock()
	delete(s.blobs, publicID)
	s.mu.Unlock()
	return nil
}

// Blob returns the stored bytes for a key, if present.
func (s *MemoryStorage) Blob(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	return data, ok
}
