package domain

import "time"

// Snippet represents a named piece of text content.
// The name is unique within the corpus; saving an existing name overwrites.
type Snippet struct {
	// Name is the unique identifier for the snippet.
	Name string

	// Content is the snippet text, stored and returned verbatim.
	Content string
}

// Image represents a named binary payload.
// Tool callers exchange image content as base64 strings; the decoded
// bytes are what gets persisted.
type Image struct {
	// Name is the unique identifier for the image.
	Name string

	// Data is the decoded binary content.
	Data []byte
}

// SnippetDocument is the document-store record mirroring a saved snippet.
// The object store remains the source of truth; this record exists so
// snippets can be queried by name without listing the whole container.
type SnippetDocument struct {
	// ID is the unique document identifier.
	ID string

	// Name is the snippet name the document mirrors.
	Name string

	// Content is the snippet text at the time of the last save.
	Content string

	// UpdatedAt is when the mirror was last written.
	UpdatedAt time.Time
}
