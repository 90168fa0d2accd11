// Package domain defines the core business entities for stashd.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Snippet: A named piece of text content
//   - Image: A named binary payload exchanged as base64 tool arguments
//   - ScoredSnippet: A search hit with similarity score and preview
//   - SearchResponse: The single-payload result of a snippet search
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
