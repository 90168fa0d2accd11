package cli

import (
	"context"
	"fmt"

	"github.com/stashd-io/stashd/internal/core/domain"
)

// stubSnippetService is a minimal in-memory driving.SnippetService.
type stubSnippetService struct {
	snippets map[string]string
	err      error
}

func (s *stubSnippetService) Save(_ context.Context, name, content string) error {
	if s.err != nil {
		return s.err
	}
	if s.snippets == nil {
		s.snippets = make(map[string]string)
	}
	s.snippets[name] = content
	return nil
}

func (s *stubSnippetService) Get(_ context.Context, name string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	content, ok := s.snippets[name]
	if !ok {
		return "", fmt.Errorf("%w: snippet %q", domain.ErrNotFound, name)
	}
	return content, nil
}

func (s *stubSnippetService) List(_ context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	names := make([]string, 0, len(s.snippets))
	for name := range s.snippets {
		names = append(names, name)
	}
	return names, nil
}

// stubImageService is a minimal in-memory driving.ImageService.
type stubImageService struct {
	images map[string]string
	err    error
}

func (s *stubImageService) Save(_ context.Context, name, base64Content string) error {
	if s.err != nil {
		return s.err
	}
	if s.images == nil {
		s.images = make(map[string]string)
	}
	s.images[name] = base64Content
	return nil
}

func (s *stubImageService) Get(_ context.Context, name string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	content, ok := s.images[name]
	if !ok {
		return "", fmt.Errorf("%w: image %q", domain.ErrNotFound, name)
	}
	return content, nil
}

// stubSearchService returns a canned response.
type stubSearchService struct {
	response  domain.SearchResponse
	lastQuery string
}

func (s *stubSearchService) Search(_ context.Context, query string) domain.SearchResponse {
	s.lastQuery = query
	return s.response
}

// setupTestServices swaps the package services for stubs and returns a
// cleanup function restoring the originals.
func setupTestServices() func() {
	origSnippet := snippetService
	origImage := imageService
	origSearch := searchService

	snippetService = &stubSnippetService{}
	imageService = &stubImageService{}
	searchService = &stubSearchService{
		response: domain.SearchResults([]domain.ScoredSnippet{
			{Name: "greeting", Preview: "print('hello world')", Similarity: 0.91},
		}),
	}

	return func() {
		snippetService = origSnippet
		imageService = origImage
		searchService = origSearch
	}
}
