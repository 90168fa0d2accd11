package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
	"github.com/stashd-io/stashd/internal/core/ports/driving"
	"github.com/stashd-io/stashd/internal/logger"
)

// Ensure ImageService implements the interface.
var _ driving.ImageService = (*ImageService)(nil)

// imageKeySuffix is the object-store key layout for images.
const imageKeySuffix = ".bin"

// ImageService manages named binary images. Tool callers exchange
// content as base64 strings; the store holds the decoded bytes.
type ImageService struct {
	objectStore driven.ObjectStore
}

// NewImageService creates a new image service.
func NewImageService(objectStore driven.ObjectStore) *ImageService {
	return &ImageService{objectStore: objectStore}
}

// Save decodes the base64 content and persists the bytes.
func (s *ImageService) Save(ctx context.Context, name, base64Content string) error {
	if name == "" {
		return fmt.Errorf("%w: image name is required", domain.ErrInvalidInput)
	}
	if base64Content == "" {
		return fmt.Errorf("%w: image content is required", domain.ErrInvalidInput)
	}

	data, err := base64.StdEncoding.DecodeString(base64Content)
	if err != nil {
		return fmt.Errorf("%w: decoding image content: %v", domain.ErrInvalidInput, err)
	}

	if err := s.objectStore.Put(ctx, driven.ImageContainer, imageKey(name), data); err != nil {
		return fmt.Errorf("saving image %q: %w", name, err)
	}
	logger.Info("Saved image %q (%d bytes)", name, len(data))

	return nil
}

// Get returns the stored image encoded as base64.
func (s *ImageService) Get(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: image name is required", domain.ErrInvalidInput)
	}

	data, err := s.objectStore.Get(ctx, driven.ImageContainer, imageKey(name))
	if err != nil {
		return "", fmt.Errorf("retrieving image %q: %w", name, err)
	}
	logger.Info("Retrieved image %q (%d bytes)", name, len(data))

	return base64.StdEncoding.EncodeToString(data), nil
}

// imageKey maps an image name to its object-store key.
func imageKey(name string) string {
	return name + imageKeySuffix
}
