package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// This is an optional service - when nil, semantic snippet search is
// disabled and the search tool reports the embedding service as
// unavailable.
//
// Embeddings are transient: the search service recomputes them on
// every invocation and never persists a vector. Equal inputs are
// assumed "close" in the embedding space per the provider's contract;
// bit-exact reproducibility across calls is not assumed.
//
// Implementations may include:
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Ollama (nomic-embed-text, all-minilm)
//   - Local models via inference servers
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// Callers needing many embeddings fan out over Embed with their
	// own concurrency and timeout policy.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768, 1536).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup to verify connectivity before
	// advertising the search tool.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
