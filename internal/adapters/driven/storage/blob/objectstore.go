// Package blob provides a filesystem-backed implementation of the
// driven.ObjectStore port. Containers map to directories and keys to
// files beneath a single root directory.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ObjectStore = (*Store)(nil)

// DevelopmentSentinel is the connection value that selects the
// well-known local development root instead of a configured one,
// mirroring the storage-emulator convention of the original tooling.
const DevelopmentSentinel = "UseDevelopmentStorage=true"

// Store is a filesystem-backed object store.
type Store struct {
	root string
}

// NewStore creates an object store rooted at the given directory.
//
// An empty root defaults to ~/.stashd/data/blobs. The value
// DevelopmentSentinel substitutes the well-known local development
// root ~/.stashd/devstore.
func NewStore(root string) (*Store, error) {
	switch root {
	case "":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		root = filepath.Join(home, ".stashd", "data", "blobs")
	case DevelopmentSentinel:
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		root = filepath.Join(home, ".stashd", "devstore")
	}

	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("creating blob root: %w", err)
	}

	return &Store{root: root}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// List returns every object in the container in key order.
// A container that has never been written is treated as empty.
func (s *Store) List(_ context.Context, container string) ([]driven.Object, error) {
	dir, err := s.containerDir(container)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing container %q: %w", container, err)
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		keys = append(keys, entry.Name())
	}
	sort.Strings(keys)

	objects := make([]driven.Object, 0, len(keys))
	for _, key := range keys {
		data, err := os.ReadFile(filepath.Join(dir, key))
		if err != nil {
			return nil, fmt.Errorf("reading object %q: %w", key, err)
		}
		objects = append(objects, driven.Object{Key: key, Data: data})
	}
	return objects, nil
}

// Get retrieves an object by key.
func (s *Store) Get(_ context.Context, container, key string) ([]byte, error) {
	path, err := s.objectPath(container, key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading object %q: %w", key, err)
	}
	return data, nil
}

// Put stores an object, overwriting any existing key.
func (s *Store) Put(_ context.Context, container, key string, data []byte) error {
	path, err := s.objectPath(container, key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating container %q: %w", container, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing object %q: %w", key, err)
	}
	return nil
}

func (s *Store) containerDir(container string) (string, error) {
	if err := validateSegment(container); err != nil {
		return "", fmt.Errorf("container %q: %w", container, err)
	}
	return filepath.Join(s.root, container), nil
}

func (s *Store) objectPath(container, key string) (string, error) {
	dir, err := s.containerDir(container)
	if err != nil {
		return "", err
	}
	if err := validateSegment(key); err != nil {
		return "", fmt.Errorf("key %q: %w", key, err)
	}
	return filepath.Join(dir, key), nil
}

// validateSegment rejects names that would escape the store root.
func validateSegment(name string) error {
	if name == "" || name == "." || name == ".." {
		return domain.ErrInvalidInput
	}
	if strings.ContainsAny(name, `/\`) {
		return domain.ErrInvalidInput
	}
	return nil
}
