package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
	"github.com/stashd-io/stashd/internal/core/ports/driving"
	"github.com/stashd-io/stashd/internal/logger"
)

// Ensure SnippetService implements the interface.
var _ driving.SnippetService = (*SnippetService)(nil)

// snippetKey is the object-store key layout for snippets.
const snippetKeySuffix = ".json"

// SnippetService manages named text snippets.
// The object store is the source of truth; the document store, when
// present, receives a best-effort mirror write on save so snippets can
// be queried by name.
type SnippetService struct {
	objectStore driven.ObjectStore
	docStore    driven.DocumentStore
}

// NewSnippetService creates a new snippet service.
// The docStore parameter is optional (can be nil).
func NewSnippetService(objectStore driven.ObjectStore, docStore driven.DocumentStore) *SnippetService {
	return &SnippetService{
		objectStore: objectStore,
		docStore:    docStore,
	}
}

// Save persists a snippet, overwriting any existing snippet with the
// same name. A document-store mirror failure is demoted to a warning:
// the object-store write alone determines success.
func (s *SnippetService) Save(ctx context.Context, name, content string) error {
	if name == "" {
		return fmt.Errorf("%w: snippet name is required", domain.ErrInvalidInput)
	}
	if content == "" {
		return fmt.Errorf("%w: snippet content is required", domain.ErrInvalidInput)
	}

	key := snippetKey(name)
	if err := s.objectStore.Put(ctx, driven.SnippetContainer, key, []byte(content)); err != nil {
		return fmt.Errorf("saving snippet %q: %w", name, err)
	}
	logger.Info("Saved snippet %q (%d bytes)", name, len(content))

	// Mirror write is best-effort: a failure here must not fail the save.
	if s.docStore != nil {
		doc := &domain.SnippetDocument{
			Name:      name,
			Content:   content,
			UpdatedAt: time.Now().UTC(),
		}
		if err := s.docStore.Upsert(ctx, doc); err != nil {
			logger.Warn("document store mirror write for snippet %q failed: %v", name, err)
		}
	}

	return nil
}

// Get returns the snippet content exactly as saved.
func (s *SnippetService) Get(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: snippet name is required", domain.ErrInvalidInput)
	}

	data, err := s.objectStore.Get(ctx, driven.SnippetContainer, snippetKey(name))
	if err != nil {
		return "", fmt.Errorf("retrieving snippet %q: %w", name, err)
	}
	logger.Info("Retrieved snippet %q (%d bytes)", name, len(data))

	return string(data), nil
}

// List returns the names of all saved snippets in stable key order.
func (s *SnippetService) List(ctx context.Context) ([]string, error) {
	objects, err := s.objectStore.List(ctx, driven.SnippetContainer)
	if err != nil {
		return nil, fmt.Errorf("listing snippets: %w", err)
	}

	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, snippetName(obj.Key))
	}
	return names, nil
}

// snippetKey maps a snippet name to its object-store key.
func snippetKey(name string) string {
	return name + snippetKeySuffix
}

// snippetName recovers the snippet name from an object-store key.
func snippetName(key string) string {
	return strings.TrimSuffix(key, snippetKeySuffix)
}
