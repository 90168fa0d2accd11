package driving

import "context"

// SnippetService manages named text snippets.
type SnippetService interface {
	// Save persists a snippet, overwriting any existing snippet with
	// the same name. The object-store write is authoritative; the
	// document-store mirror is best-effort.
	Save(ctx context.Context, name, content string) error

	// Get returns the snippet content exactly as saved.
	// Returns domain.ErrNotFound if no snippet has the given name.
	Get(ctx context.Context, name string) (string, error)

	// List returns the names of all saved snippets in stable order.
	List(ctx context.Context) ([]string, error)
}
