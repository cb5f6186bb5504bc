package imagegen

import (
	"context"
	"fmt"
	"sync"

	"github.com/naradigital/go-portal/pkg/interfaces"
)

// MemoryBlobStore keeps uploads in-process and hands back synthetic URLs.
// Used by tests and hosts without an object store.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryBlobStore constructs an empty store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

var _ interfaces.BlobStore = (*MemoryBlobStore)(nil)

// Upload stores the payload and returns its synthetic URL.
func (s *MemoryBlobStore) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.blobs[path] = copied
	return fmt.Sprintf("memblob://%s", path), nil
}

// Get returns a stored payload, for test assertions.
func (s *MemoryBlobStore) Get(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[path]
	return data, ok
}
