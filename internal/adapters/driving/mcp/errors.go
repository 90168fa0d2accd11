// Package mcp provides an MCP (Model Context Protocol) server adapter
// for stashd. It exposes the snippet and image stores, plus semantic
// snippet search, as tools that AI assistants can call.
package mcp

import "errors"

// Errors returned when required ports are not provided.
var (
	// ErrMissingSnippetService is returned when the snippet service is not provided.
	ErrMissingSnippetService = errors.New("mcp: snippet service is required")

	// ErrMissingImageService is returned when the image service is not provided.
	ErrMissingImageService = errors.New("mcp: image service is required")
)
