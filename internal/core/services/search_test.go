package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashd-io/stashd/internal/adapters/driven/storage/memory"
	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
// It returns deterministic vectors keyed by input text.
type mockEmbeddingService struct {
	vectors  map[string][]float32
	fallback []float32
	failOn   string
	calls    atomic.Int64
}

func (m *mockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	m.calls.Add(1)
	if m.failOn != "" && text == m.failOn {
		return nil, errors.New("embedding service unreachable")
	}
	if vec, ok := m.vectors[text]; ok {
		return vec, nil
	}
	return m.fallback, nil
}

func (m *mockEmbeddingService) Dimensions() int { return 3 }

func (m *mockEmbeddingService) ModelName() string { return "mock-embed" }

func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }

func (m *mockEmbeddingService) Close() error { return nil }

// failingObjectStore implements driven.ObjectStore and fails every call.
type failingObjectStore struct {
	err error
}

func (s *failingObjectStore) List(_ context.Context, _ string) ([]driven.Object, error) {
	return nil, s.err
}

func (s *failingObjectStore) Get(_ context.Context, _, _ string) ([]byte, error) {
	return nil, s.err
}

func (s *failingObjectStore) Put(_ context.Context, _, _ string, _ []byte) error {
	return s.err
}

// --- Helpers ---

func saveSnippets(t *testing.T, store driven.ObjectStore, snippets map[string]string) {
	t.Helper()
	svc := NewSnippetService(store, nil)
	for name, content := range snippets {
		require.NoError(t, svc.Save(context.Background(), name, content))
	}
}

// --- Tests ---

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("missing query returns error shape without any calls", func(t *testing.T) {
		store := &failingObjectStore{err: errors.New("must not be called")}
		embedder := &mockEmbeddingService{}
		svc := NewSearchService(store, embedder)

		resp := svc.Search(ctx, "   ")

		assert.True(t, resp.IsError())
		assert.Equal(t, domain.MissingQueryMessage, resp.Err)
		assert.Equal(t, int64(0), embedder.calls.Load())
	})

	t.Run("empty corpus returns message shape before embedding", func(t *testing.T) {
		embedder := &mockEmbeddingService{}
		svc := NewSearchService(memory.NewObjectStore(), embedder)

		resp := svc.Search(ctx, "anything")

		require.False(t, resp.IsError())
		assert.Empty(t, resp.Results)
		assert.Equal(t, domain.EmptyCorpusMessage, resp.Message)
		assert.Equal(t, int64(0), embedder.calls.Load())

		data, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"results":[],"message":"No snippets found to search"}`, string(data))
	})

	t.Run("threshold filters and ranks results", func(t *testing.T) {
		store := memory.NewObjectStore()
		saveSnippets(t, store, map[string]string{
			"a": "print('hello world')",
			"b": "def add(x,y): return x+y",
		})

		// similarity(query, a) = 0.85, similarity(query, b) = 0.2
		embedder := &mockEmbeddingService{
			vectors: map[string][]float32{
				"greeting function":        {1, 0, 0},
				"print('hello world')":     {0.85, float32(0.5267827), 0},
				"def add(x,y): return x+y": {0.2, float32(0.9797959), 0},
			},
		}
		svc := NewSearchService(store, embedder)

		resp := svc.Search(ctx, "greeting function")

		require.False(t, resp.IsError())
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "a", resp.Results[0].Name)
		assert.Equal(t, "print('hello world')", resp.Results[0].Preview)
		assert.InDelta(t, 0.85, resp.Results[0].Similarity, 1e-6)
	})

	t.Run("results are sorted by similarity descending", func(t *testing.T) {
		store := memory.NewObjectStore()
		saveSnippets(t, store, map[string]string{
			"low":  "low match",
			"high": "high match",
			"mid":  "mid match",
		})

		embedder := &mockEmbeddingService{
			vectors: map[string][]float32{
				"query":      {1, 0, 0},
				"low match":  {0.75, float32(0.6614378), 0},
				"high match": {0.99, float32(0.1410674), 0},
				"mid match":  {0.85, float32(0.5267827), 0},
			},
		}
		svc := NewSearchService(store, embedder)

		resp := svc.Search(ctx, "query")

		require.False(t, resp.IsError())
		require.Len(t, resp.Results, 3)
		for i := 0; i+1 < len(resp.Results); i++ {
			assert.GreaterOrEqual(t, resp.Results[i].Similarity, resp.Results[i+1].Similarity)
		}
		assert.Equal(t, "high", resp.Results[0].Name)
		assert.Equal(t, "mid", resp.Results[1].Name)
		assert.Equal(t, "low", resp.Results[2].Name)
	})

	t.Run("similarity below threshold is excluded", func(t *testing.T) {
		store := memory.NewObjectStore()
		saveSnippets(t, store, map[string]string{"edge": "edge content"})

		// Unit vectors scoring 0.65 against the query.
		embedder := &mockEmbeddingService{
			vectors: map[string][]float32{
				"query":        {1, 0, 0},
				"edge content": {0.65, float32(0.7599342), 0},
			},
		}
		svc := NewSearchService(store, embedder)

		resp := svc.Search(ctx, "query")

		require.False(t, resp.IsError())
		assert.Empty(t, resp.Results)
		assert.Empty(t, resp.Message)
	})

	t.Run("long content is truncated in previews", func(t *testing.T) {
		store := memory.NewObjectStore()
		content := strings.Repeat("z", 180)
		saveSnippets(t, store, map[string]string{"big": content})

		embedder := &mockEmbeddingService{
			vectors:  map[string][]float32{"query": {1, 0, 0}},
			fallback: []float32{1, 0, 0},
		}
		svc := NewSearchService(store, embedder)

		resp := svc.Search(ctx, "query")

		require.False(t, resp.IsError())
		require.Len(t, resp.Results, 1)
		assert.Equal(t, strings.Repeat("z", 100)+"...", resp.Results[0].Preview)
		assert.Len(t, resp.Results[0].Preview, 103)
	})

	t.Run("corpus embedding failure fails the whole invocation", func(t *testing.T) {
		store := memory.NewObjectStore()
		saveSnippets(t, store, map[string]string{
			"good": "fine content",
			"bad":  "poison content",
		})

		embedder := &mockEmbeddingService{
			fallback: []float32{1, 0, 0},
			failOn:   "poison content",
		}
		svc := NewSearchService(store, embedder)

		resp := svc.Search(ctx, "query")

		assert.True(t, resp.IsError())
		assert.Contains(t, resp.Err, "bad")
		assert.Empty(t, resp.Results)
	})

	t.Run("storage failure returns error shape", func(t *testing.T) {
		store := &failingObjectStore{err: errors.New("connection refused")}
		svc := NewSearchService(store, &mockEmbeddingService{})

		resp := svc.Search(ctx, "query")

		assert.True(t, resp.IsError())
		assert.Contains(t, resp.Err, "connection refused")
	})

	t.Run("nil embedding service returns error shape", func(t *testing.T) {
		svc := NewSearchService(memory.NewObjectStore(), nil)

		resp := svc.Search(ctx, "query")

		assert.True(t, resp.IsError())
		assert.Equal(t, domain.ErrEmbeddingUnavailable.Error(), resp.Err)
	})
}
