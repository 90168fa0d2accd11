package mcp

import (
	"context"

	"github.com/stashd-io/stashd/internal/core/domain"
)

// mockSnippetService is a mock implementation of driving.SnippetService.
type mockSnippetService struct {
	content  string
	names    []string
	saveErr  error
	getErr   error
	listErr  error
	saved    map[string]string
	lastName string
}

func (m *mockSnippetService) Save(_ context.Context, name, content string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.saved == nil {
		m.saved = make(map[string]string)
	}
	m.saved[name] = content
	return nil
}

func (m *mockSnippetService) Get(_ context.Context, name string) (string, error) {
	m.lastName = name
	return m.content, m.getErr
}

func (m *mockSnippetService) List(_ context.Context) ([]string, error) {
	return m.names, m.listErr
}

// mockImageService is a mock implementation of driving.ImageService.
type mockImageService struct {
	content string
	saveErr error
	getErr  error
	saved   map[string]string
}

func (m *mockImageService) Save(_ context.Context, name, base64Content string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.saved == nil {
		m.saved = make(map[string]string)
	}
	m.saved[name] = base64Content
	return nil
}

func (m *mockImageService) Get(_ context.Context, _ string) (string, error) {
	return m.content, m.getErr
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response  domain.SearchResponse
	lastQuery string
}

func (m *mockSearchService) Search(_ context.Context, query string) domain.SearchResponse {
	m.lastQuery = query
	return m.response
}
