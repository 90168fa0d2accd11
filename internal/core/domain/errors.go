package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Semantic snippet search is disabled without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrConfigurationMissing indicates required connection or endpoint
	// configuration is absent. Surfaced to tool callers as a descriptive
	// message, never as a crash.
	ErrConfigurationMissing = errors.New("configuration missing")
)
