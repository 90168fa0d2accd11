package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.SnippetDocument // keyed by snippet name
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.SnippetDocument),
	}
}

// Upsert stores or replaces the document for doc.Name.
// An existing document keeps its ID; new documents get a fresh one.
func (s *DocumentStore) Upsert(_ context.Context, doc *domain.SnippetDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *doc
	if existing, ok := s.documents[doc.Name]; ok {
		stored.ID = existing.ID
	} else if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	s.documents[doc.Name] = stored
	doc.ID = stored.ID
	return nil
}

// Query returns documents whose name equals the given name.
func (s *DocumentStore) Query(_ context.Context, name string) ([]domain.SnippetDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[name]
	if !ok {
		return nil, nil
	}
	return []domain.SnippetDocument{doc}, nil
}

// Close releases resources.
func (s *DocumentStore) Close() error {
	return nil
}
