package driving

import (
	"context"

	"github.com/stashd-io/stashd/internal/core/domain"
)

// SearchService provides semantic snippet search to external actors.
type SearchService interface {
	// Search embeds the query and every stored snippet, filters by
	// similarity, and returns exactly one of the three SearchResponse
	// shapes. Failures are folded into the error-shaped response;
	// Search never panics and never returns a partial result.
	Search(ctx context.Context, query string) domain.SearchResponse
}
