package driven

import "context"

// Well-known container names used by the snippet and image services.
const (
	// SnippetContainer holds snippet blobs, one per snippet name.
	SnippetContainer = "snippets"

	// ImageContainer holds image blobs, one per image name.
	ImageContainer = "images"
)

// Object is a single stored blob.
type Object struct {
	// Key is the blob's name within its container.
	Key string

	// Data is the blob content.
	Data []byte
}

// ObjectStore persists opaque blobs in named containers.
// This is the primary store: a successful Put here makes a save
// operation successful regardless of any mirror write.
type ObjectStore interface {
	// List returns every object in the container, in stable key order.
	// A missing container is equivalent to an empty one.
	List(ctx context.Context, container string) ([]Object, error)

	// Get retrieves an object by key.
	// Returns domain.ErrNotFound if the key does not exist.
	Get(ctx context.Context, container, key string) ([]byte, error)

	// Put stores an object, overwriting any existing key.
	Put(ctx context.Context, container, key string, data []byte) error
}
