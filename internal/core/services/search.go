package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
	"github.com/stashd-io/stashd/internal/core/ports/driving"
	"github.com/stashd-io/stashd/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

const (
	// embedCallTimeout bounds each external embedding call.
	embedCallTimeout = 30 * time.Second

	// maxConcurrentEmbeds caps the parallel corpus embedding fan-out.
	maxConcurrentEmbeds = 4
)

// candidate holds one corpus item through the scoring pipeline.
type candidate struct {
	name      string
	content   string
	embedding []float32
}

// SearchService performs semantic search over the snippet corpus.
//
// Every invocation is independent: the corpus is reloaded and every
// embedding recomputed per call. Nothing is cached across calls, so
// there is no invalidation problem, only a repeated-cost one.
type SearchService struct {
	objectStore      driven.ObjectStore
	embeddingService driven.EmbeddingService
}

// NewSearchService creates a new search service.
// The embeddingService parameter is optional (can be nil); without it
// every search returns an error-shaped response.
func NewSearchService(objectStore driven.ObjectStore, embeddingService driven.EmbeddingService) *SearchService {
	return &SearchService{
		objectStore:      objectStore,
		embeddingService: embeddingService,
	}
}

// Search runs the full pipeline: load corpus, embed query and corpus,
// score by cosine similarity, filter by threshold, rank descending.
//
// It always returns exactly one of the three SearchResponse shapes.
// Any mid-pipeline failure discards similarity work already computed
// and yields the error shape; no partial results are produced.
func (s *SearchService) Search(ctx context.Context, query string) domain.SearchResponse {
	logger.Section("Snippet Search")

	// Missing query short-circuits before any storage or embedding call.
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Missing query argument")
		return domain.SearchError(domain.MissingQueryMessage)
	}
	logger.Debug("Query: %q", query)

	if s.embeddingService == nil {
		return domain.SearchError(domain.ErrEmbeddingUnavailable.Error())
	}

	objects, err := s.objectStore.List(ctx, driven.SnippetContainer)
	if err != nil {
		logger.Warn("listing snippets failed: %v", err)
		return domain.SearchError(fmt.Sprintf("loading snippets: %v", err))
	}
	if len(objects) == 0 {
		logger.Debug("Corpus is empty")
		return domain.EmptyCorpusResponse()
	}
	logger.Debug("Corpus size: %d", len(objects))

	queryVec, err := s.embed(ctx, query)
	if err != nil {
		logger.Warn("embedding query failed: %v", err)
		return domain.SearchError(fmt.Sprintf("embedding query: %v", err))
	}

	candidates := make([]candidate, len(objects))
	for i, obj := range objects {
		candidates[i] = candidate{
			name:    snippetName(obj.Key),
			content: string(obj.Data),
		}
	}

	// Embed the corpus in parallel with fail-fast aggregation. Result
	// order is fixed by corpus position, never by call completion, and
	// the first failure cancels outstanding calls and fails the whole
	// invocation, matching the sequential reference behaviour.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEmbeds)
	for i := range candidates {
		g.Go(func() error {
			vec, err := s.embed(gctx, candidates[i].content)
			if err != nil {
				return fmt.Errorf("embedding snippet %q: %w", candidates[i].name, err)
			}
			candidates[i].embedding = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("embedding corpus failed: %v", err)
		return domain.SearchError(err.Error())
	}

	results := rank(queryVec, candidates)
	logger.Info("Search matched %d of %d snippets", len(results), len(candidates))

	return domain.SearchResults(results)
}

// embed wraps a single embedding call with a bounded timeout.
func (s *SearchService) embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, embedCallTimeout)
	defer cancel()
	return s.embeddingService.Embed(ctx, text)
}

// rank scores each candidate against the query vector, keeps items
// strictly above the similarity threshold, and sorts descending.
// The sort is stable, so equal similarities keep corpus order.
func rank(queryVec []float32, candidates []candidate) []domain.ScoredSnippet {
	results := make([]domain.ScoredSnippet, 0, len(candidates))
	for _, c := range candidates {
		similarity := domain.CosineSimilarity(queryVec, c.embedding)
		logger.Debug("Similarity %q: %.4f", c.name, similarity)
		if similarity <= domain.SimilarityThreshold {
			continue
		}
		results = append(results, domain.ScoredSnippet{
			Name:       c.name,
			Preview:    domain.Preview(c.content),
			Similarity: similarity,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	return results
}
