package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/logger"
)

// HelloInput is the (empty) input schema for the hello tool.
type HelloInput struct{}

// HelloOutput is the output schema for the hello tool.
type HelloOutput struct {
	Message string `json:"message"`
}

// SaveSnippetInput is the input schema for the save_snippet tool.
type SaveSnippetInput struct {
	SnippetName string `json:"snippetname" jsonschema:"the name of the snippet"`
	Snippet     string `json:"snippet" jsonschema:"the content of the snippet"`
}

// GetSnippetInput is the input schema for the get_snippet tool.
type GetSnippetInput struct {
	SnippetName string `json:"snippetname" jsonschema:"the name of the snippet"`
}

// SaveImageInput is the input schema for the save_image tool.
type SaveImageInput struct {
	ImageName string `json:"imagename" jsonschema:"the name of the image"`
	Image     string `json:"image" jsonschema:"the base64-encoded image content"`
}

// GetImageInput is the input schema for the get_image tool.
type GetImageInput struct {
	ImageName string `json:"imagename" jsonschema:"the name of the image"`
}

// MessageOutput is the output schema for save operations. It carries a
// single status string, success or failure alike, matching the
// plain-string results of the tool contract.
type MessageOutput struct {
	Message string `json:"message"`
}

// ContentOutput is the output schema for get operations. Exactly one
// field is populated per call.
type ContentOutput struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SearchInput is the input schema for the search_snippets tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to match against stored snippets"`
}

// SearchOutput is the output schema for the search_snippets tool.
// Serialization produces exactly one of the three response shapes.
type SearchOutput struct {
	Results []domain.ScoredSnippet `json:"results,omitempty"`
	Message string                 `json:"message,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// MarshalJSON delegates to the domain response so the wire payload is
// exactly one of the results / results+message / error shapes.
func (o SearchOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(domain.SearchResponse{
		Results: o.Results,
		Message: o.Message,
		Err:     o.Error,
	})
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hello_mcp",
		Description: "Hello world.",
	}, s.handleHello)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_snippet",
		Description: "Save a snippet with a name.",
	}, s.handleSaveSnippet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_snippet",
		Description: "Retrieve a snippet by name.",
	}, s.handleGetSnippet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_image",
		Description: "Save an image with a name.",
	}, s.handleSaveImage)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_image",
		Description: "Retrieve an image by name.",
	}, s.handleGetImage)

	// The search tool is only advertised when an embedding service is
	// wired in.
	if s.ports.Search != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_snippets",
			Description: "Search snippets semantically using natural language.",
		}, s.handleSearchSnippets)
	}
}

// handleHello handles the hello_mcp tool invocation.
func (s *Server) handleHello(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ HelloInput,
) (*mcp.CallToolResult, HelloOutput, error) {
	return nil, HelloOutput{Message: "Hello I am MCPTool!"}, nil
}

// handleSaveSnippet handles the save_snippet tool invocation.
// All outcomes are normal results: validation and upstream failures
// come back as status messages, never as protocol errors.
func (s *Server) handleSaveSnippet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveSnippetInput,
) (*mcp.CallToolResult, MessageOutput, error) {
	if input.SnippetName == "" {
		return nil, MessageOutput{Message: "No snippet name provided"}, nil
	}
	if input.Snippet == "" {
		return nil, MessageOutput{Message: "No snippet content provided"}, nil
	}

	if err := s.ports.Snippet.Save(ctx, input.SnippetName, input.Snippet); err != nil {
		logger.Warn("save_snippet failed: %v", err)
		return nil, MessageOutput{Message: fmt.Sprintf("Error saving snippet: %v", err)}, nil
	}

	return nil, MessageOutput{Message: fmt.Sprintf("Snippet '%s' saved successfully", input.SnippetName)}, nil
}

// handleGetSnippet handles the get_snippet tool invocation.
func (s *Server) handleGetSnippet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetSnippetInput,
) (*mcp.CallToolResult, ContentOutput, error) {
	if input.SnippetName == "" {
		return nil, ContentOutput{Error: "No snippet name provided"}, nil
	}

	content, err := s.ports.Snippet.Get(ctx, input.SnippetName)
	if err != nil {
		logger.Warn("get_snippet failed: %v", err)
		return nil, ContentOutput{Error: fmt.Sprintf("Error retrieving snippet: %v", err)}, nil
	}

	return nil, ContentOutput{Content: content}, nil
}

// handleSaveImage handles the save_image tool invocation.
func (s *Server) handleSaveImage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveImageInput,
) (*mcp.CallToolResult, MessageOutput, error) {
	if input.ImageName == "" {
		return nil, MessageOutput{Message: "No image name provided"}, nil
	}
	if input.Image == "" {
		return nil, MessageOutput{Message: "No image content provided"}, nil
	}

	if err := s.ports.Image.Save(ctx, input.ImageName, input.Image); err != nil {
		logger.Warn("save_image failed: %v", err)
		return nil, MessageOutput{Message: fmt.Sprintf("Error saving image: %v", err)}, nil
	}

	return nil, MessageOutput{Message: fmt.Sprintf("Image '%s' saved successfully", input.ImageName)}, nil
}

// handleGetImage handles the get_image tool invocation.
func (s *Server) handleGetImage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetImageInput,
) (*mcp.CallToolResult, ContentOutput, error) {
	if input.ImageName == "" {
		return nil, ContentOutput{Error: "No image name provided"}, nil
	}

	content, err := s.ports.Image.Get(ctx, input.ImageName)
	if err != nil {
		logger.Warn("get_image failed: %v", err)
		return nil, ContentOutput{Error: fmt.Sprintf("Error retrieving image: %v", err)}, nil
	}

	return nil, ContentOutput{Content: content}, nil
}

// handleSearchSnippets handles the search_snippets tool invocation.
// The service folds every failure into the error-shaped response, so
// this handler never returns a protocol error.
func (s *Server) handleSearchSnippets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	resp := s.ports.Search.Search(ctx, input.Query)

	return nil, SearchOutput{
		Results: resp.Results,
		Message: resp.Message,
		Error:   resp.Err,
	}, nil
}
