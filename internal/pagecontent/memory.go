package pagecontent

import (
	"context"
	"sort"
	"sync"

	"github.com/naradigital/go-portal/internal/herocontent"
)

// MemoryRepository is an in-memory document store for scaffolding and tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]herocontent.Document
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		docs: make(map[string]herocontent.Document),
	}
}

// Get retrieves a page document by id.
func (m *MemoryRepository) Get(_ context.Context, pageID string) (herocontent.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[pageID]
	if !ok {
		return nil, &NotFoundError{Key: pageID}
	}
	return herocontent.CloneDocument(doc), nil
}

// Update replaces an existing document, failing when it does not exist.
func (m *MemoryRepository) Update(_ context.Context, pageID string, doc herocontent.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[pageID]; !ok {
		return &NotFoundError{Key: pageID}
	}
	m.docs[pageID] = herocontent.CloneDocument(doc)
	return nil
}

// CreateOrMerge upserts the document, deep-merging into any existing state.
func (m *MemoryRepository) CreateOrMerge(_ context.Context, pageID string, doc herocontent.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.docs[pageID]
	if !ok {
		m.docs[pageID] = herocontent.CloneDocument(doc)
		return nil
	}
	m.docs[pageID] = mergeDocuments(existing, doc)
	return nil
}

// List returns every stored page id, sorted.
func (m *MemoryRepository) List(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.docs))
	for id := range m.docs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
