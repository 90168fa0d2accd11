// Package embedding provides factory functions for creating embedding
// service adapters from application configuration.
package embedding

import (
	"context"
	"fmt"
	"os"
	"time"

	ollamaembed "github.com/stashd-io/stashd/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/stashd-io/stashd/internal/adapters/driven/embedding/openai"
	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// Providers selectable via the "embedding.provider" config key.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// New creates an embedding service from configuration.
//
// Config keys: embedding.provider, embedding.model, embedding.base_url,
// embedding.api_key, embedding.dimensions. The OpenAI API key falls
// back to the OPENAI_API_KEY environment variable. An unset provider
// defaults to Ollama; "none" disables semantic search and returns
// (nil, nil).
func New(cfg driven.ConfigStore) (driven.EmbeddingService, error) {
	provider := cfg.GetString("embedding.provider")

	switch provider {
	case ProviderNone:
		return nil, nil

	case "", ProviderOllama:
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL:    cfg.GetString("embedding.base_url"),
			Model:      cfg.GetString("embedding.model"),
			Dimensions: cfg.GetInt("embedding.dimensions"),
		}), nil

	case ProviderOpenAI:
		apiKey := cfg.GetString("embedding.api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:     apiKey,
			BaseURL:    cfg.GetString("embedding.base_url"),
			Model:      cfg.GetString("embedding.model"),
			Dimensions: cfg.GetInt("embedding.dimensions"),
		})

	default:
		return nil, fmt.Errorf("unknown embedding provider %q", provider)
	}
}

// NewValidated creates an embedding service and validates connectivity.
// Returns (nil, error) when the configured service is unreachable so
// callers can degrade to running without the search tool.
func NewValidated(cfg driven.ConfigStore) (driven.EmbeddingService, error) {
	svc, err := New(cfg)
	if err != nil || svc == nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%v)", domain.ErrEmbeddingUnavailable, err)
	}

	return svc, nil
}
