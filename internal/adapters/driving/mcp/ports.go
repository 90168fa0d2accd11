package mcp

import (
	"github.com/stashd-io/stashd/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Snippet manages named text snippets.
	Snippet driving.SnippetService

	// Image manages named binary images.
	Image driving.ImageService

	// Search provides semantic snippet search. Optional: when nil the
	// search tool is not advertised.
	Search driving.SearchService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Snippet == nil {
		return ErrMissingSnippetService
	}
	if p.Image == nil {
		return ErrMissingImageService
	}
	// Search is optional: without an embedding service the server
	// still serves save/get tools.
	return nil
}
