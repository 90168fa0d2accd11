package driving

import "context"

// ImageService manages named binary images exchanged as base64 strings.
type ImageService interface {
	// Save decodes the base64 content and persists the bytes,
	// overwriting any existing image with the same name.
	// Returns domain.ErrInvalidInput if the content is not valid base64.
	Save(ctx context.Context, name, base64Content string) error

	// Get returns the stored image encoded as base64.
	// Returns domain.ErrNotFound if no image has the given name.
	Get(ctx context.Context, name string) (string, error)
}
