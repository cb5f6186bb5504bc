package i18n

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// MemoryPreferenceStore keeps the preference in-process. Used by tests and
// hosts without durable client storage.
type MemoryPreferenceStore struct {
	mu   sync.RWMutex
	code string
}

// NewMemoryPreferenceStore constructs an empty store.
func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{}
}

// Get returns the stored code, or empty when unset.
func (s *MemoryPreferenceStore) Get(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.code, nil
}

// Set stores the code.
func (s *MemoryPreferenceStore) Set(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = NormalizeCode(code)
	return nil
}

// FilePreferenceStore persists the preference as a single file named after
// the storage key, the durable analog of a localStorage slot.
type FilePreferenceStore struct {
	dir string
	key string
}

// NewFilePreferenceStore constructs a store rooted at dir using key as the
// file name.
func NewFilePreferenceStore(dir, key string) (*FilePreferenceStore, error) {
	if dir == "" {
		return nil, errors.New("i18n: preference store directory cannot be empty")
	}
	if key == "" {
		return nil, errors.New("i18n: preference store key cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FilePreferenceStore{dir: dir, key: key}, nil
}

// Get reads the stored code; a missing file means no preference.
func (s *FilePreferenceStore) Get(context.Context) (string, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return NormalizeCode(string(data)), nil
}

// Set writes the code, replacing any previous value.
func (s *FilePreferenceStore) Set(_ context.Context, code string) error {
	return os.WriteFile(s.path(), []byte(NormalizeCode(code)), 0o644)
}

func (s *FilePreferenceStore) path() string {
	return filepath.Join(s.dir, s.key)
}
