package driven

import (
	"context"

	"github.com/stashd-io/stashd/internal/core/domain"
)

// DocumentStore persists a queryable mirror of saved snippets.
// Backed by SQLite. This is an optional store: when nil, snippet
// saves skip the mirror write and name queries are unavailable.
//
// Implementations MUST use parameterized queries for the name filter.
// Interpolating a caller-supplied name into query text is an injection
// hazard and is not an acceptable implementation of this port.
type DocumentStore interface {
	// Upsert stores or replaces the document for doc.Name.
	Upsert(ctx context.Context, doc *domain.SnippetDocument) error

	// Query returns documents whose name equals the given name.
	// The name is passed as a bound parameter, never interpolated.
	Query(ctx context.Context, name string) ([]domain.SnippetDocument, error)

	// Close releases resources.
	Close() error
}
