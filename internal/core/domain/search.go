package domain

import "encoding/json"

// Search policy constants. These are fixed policy values, not user
// configuration.
const (
	// SimilarityThreshold is the minimum cosine similarity a snippet
	// must strictly exceed to appear in search results.
	SimilarityThreshold = 0.7

	// PreviewLength is the maximum number of characters of snippet
	// content included in a result preview before truncation.
	PreviewLength = 100

	// EmptyCorpusMessage is returned when a search runs against an
	// empty corpus.
	EmptyCorpusMessage = "No snippets found to search"

	// MissingQueryMessage is returned when the search query argument
	// is absent or empty.
	MissingQueryMessage = "No search query provided"
)

// ScoredSnippet is a single search hit.
type ScoredSnippet struct {
	// Name is the matched snippet's name.
	Name string `json:"name"`

	// Preview is the snippet content truncated to PreviewLength
	// characters, with an ellipsis marker when truncated.
	Preview string `json:"preview"`

	// Similarity is the cosine similarity against the query, in [-1, 1].
	Similarity float64 `json:"similarity"`
}

// SearchResponse is the single payload returned per search invocation.
// Exactly one of three shapes is serialized:
//
//	{"results": [...]}                                   hits found
//	{"results": [], "message": "No snippets found..."}   empty corpus
//	{"error": "..."}                                     failure
type SearchResponse struct {
	Results []ScoredSnippet
	Message string
	Err     string
}

// SearchResults builds the success-shaped response.
func SearchResults(results []ScoredSnippet) SearchResponse {
	if results == nil {
		results = []ScoredSnippet{}
	}
	return SearchResponse{Results: results}
}

// EmptyCorpusResponse builds the empty-corpus-shaped response.
func EmptyCorpusResponse() SearchResponse {
	return SearchResponse{Results: []ScoredSnippet{}, Message: EmptyCorpusMessage}
}

// SearchError builds the error-shaped response.
func SearchError(msg string) SearchResponse {
	return SearchResponse{Err: msg}
}

// IsError reports whether the response is error-shaped.
func (r SearchResponse) IsError() bool {
	return r.Err != ""
}

// MarshalJSON serializes exactly one of the three response shapes.
func (r SearchResponse) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{Error: r.Err})
	}

	results := r.Results
	if results == nil {
		results = []ScoredSnippet{}
	}

	if r.Message != "" {
		return json.Marshal(struct {
			Results []ScoredSnippet `json:"results"`
			Message string          `json:"message"`
		}{Results: results, Message: r.Message})
	}

	return json.Marshal(struct {
		Results []ScoredSnippet `json:"results"`
	}{Results: results})
}

// Preview truncates content to PreviewLength characters, appending an
// ellipsis marker only when the content is longer than the limit.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= PreviewLength {
		return content
	}
	return string(runes[:PreviewLength]) + "..."
}
