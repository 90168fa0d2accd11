package mcp

import (
	"context"
	"errors"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) *sdk.ReadResourceRequest {
	return &sdk.ReadResourceRequest{
		Params: &sdk.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleSnippetsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists saved names as JSON", func(t *testing.T) {
		snippets := &mockSnippetService{names: []string{"alpha", "beta"}}
		server := newTestServer(t, &Ports{Snippet: snippets, Image: &mockImageService{}})

		result, err := server.handleSnippetsResource(ctx, readRequest("stashd://snippets"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "stashd://snippets", result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.JSONEq(t, `["alpha","beta"]`, result.Contents[0].Text)
	})

	t.Run("empty store yields an empty JSON array", func(t *testing.T) {
		server := newTestServer(t, &Ports{Snippet: &mockSnippetService{}, Image: &mockImageService{}})

		result, err := server.handleSnippetsResource(ctx, readRequest("stashd://snippets"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.JSONEq(t, `[]`, result.Contents[0].Text)
	})

	t.Run("list failure propagates", func(t *testing.T) {
		snippets := &mockSnippetService{listErr: errors.New("storage offline")}
		server := newTestServer(t, &Ports{Snippet: snippets, Image: &mockImageService{}})

		_, err := server.handleSnippetsResource(ctx, readRequest("stashd://snippets"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage offline")
	})
}

func TestServer_handleSnippetContentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns snippet content as text", func(t *testing.T) {
		snippets := &mockSnippetService{content: "print('hi')"}
		server := newTestServer(t, &Ports{Snippet: snippets, Image: &mockImageService{}})

		result, err := server.handleSnippetContentResource(ctx, readRequest("stashd://snippets/greeting"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "print('hi')", result.Contents[0].Text)
		assert.Equal(t, "greeting", snippets.lastName)
	})

	t.Run("rejects a URI without a name", func(t *testing.T) {
		server := newTestServer(t, &Ports{Snippet: &mockSnippetService{}, Image: &mockImageService{}})

		_, err := server.handleSnippetContentResource(ctx, readRequest("stashd://snippets/"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid snippet resource URI")
	})

	t.Run("rejects a URI outside the scheme", func(t *testing.T) {
		server := newTestServer(t, &Ports{Snippet: &mockSnippetService{}, Image: &mockImageService{}})

		_, err := server.handleSnippetContentResource(ctx, readRequest("file:///etc/passwd"))

		require.Error(t, err)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		snippets := &mockSnippetService{getErr: errors.New("not here")}
		server := newTestServer(t, &Ports{Snippet: snippets, Image: &mockImageService{}})

		_, err := server.handleSnippetContentResource(ctx, readRequest("stashd://snippets/x"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not here")
	})
}
