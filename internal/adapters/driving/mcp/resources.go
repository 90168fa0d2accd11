package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for stashd resources.
const uriScheme = "stashd://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing snippet names.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "snippets",
		Name:        "snippets",
		Description: "Names of all saved snippets",
		MIMEType:    "application/json",
	}, s.handleSnippetsResource)

	// Template for snippet content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "snippets/{name}",
		Name:        "snippet-content",
		Description: "Content of a specific snippet",
		MIMEType:    "text/plain",
	}, s.handleSnippetContentResource)
}

// handleSnippetsResource returns the list of saved snippet names.
func (s *Server) handleSnippetsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names, err := s.ports.Snippet.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing snippets: %w", err)
	}
	if names == nil {
		names = []string{}
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling snippet names: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSnippetContentResource returns the content of one snippet.
func (s *Server) handleSnippetContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := strings.TrimPrefix(req.Params.URI, uriScheme+"snippets/")
	if name == "" || name == req.Params.URI {
		return nil, fmt.Errorf("invalid snippet resource URI: %s", req.Params.URI)
	}

	content, err := s.ports.Snippet.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("reading snippet %q: %w", name, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     content,
		}},
	}, nil
}
