// Package memory provides in-memory implementations of the driven
// storage ports. Used in tests and as a zero-configuration default
// for local experimentation; contents do not survive the process.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/stashd-io/stashd/internal/core/domain"
	"github.com/stashd-io/stashd/internal/core/ports/driven"
)

// Ensure ObjectStore implements the interface.
var _ driven.ObjectStore = (*ObjectStore)(nil)

// ObjectStore is an in-memory implementation of driven.ObjectStore.
type ObjectStore struct {
	mu         sync.RWMutex
	containers map[string]map[string][]byte
}

// NewObjectStore creates a new in-memory object store.
func NewObjectStore() *ObjectStore {
	return &ObjectStore{
		containers: make(map[string]map[string][]byte),
	}
}

// List returns every object in the container in key order.
func (s *ObjectStore) List(_ context.Context, container string) ([]driven.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blobs := s.containers[container]
	keys := make([]string, 0, len(blobs))
	for key := range blobs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	objects := make([]driven.Object, 0, len(keys))
	for _, key := range keys {
		data := make([]byte, len(blobs[key]))
		copy(data, blobs[key])
		objects = append(objects, driven.Object{Key: key, Data: data})
	}
	return objects, nil
}

// Get retrieves an object by key.
func (s *ObjectStore) Get(_ context.Context, container, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blobs, ok := s.containers[container]
	if !ok {
		return nil, domain.ErrNotFound
	}
	stored, ok := blobs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}

	data := make([]byte, len(stored))
	copy(data, stored)
	return data, nil
}

// Put stores an object, overwriting any existing key.
func (s *ObjectStore) Put(_ context.Context, container, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blobs, ok := s.containers[container]
	if !ok {
		blobs = make(map[string][]byte)
		s.containers[container] = blobs
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	blobs[key] = stored
	return nil
}
