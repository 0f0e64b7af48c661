package vault

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is an in-memory document store with true compare-and-swap
// semantics. It backs tests and lets concurrent patch scenarios be
// exercised without touching disk.
type MemStore struct {
	mu   sync.Mutex
	docs map[string]string

	// OnRead, when set, runs after every Read with the path and the
	// snapshot about to be returned. Tests use it to interleave
	// concurrent edits deterministically.
	OnRead func(path, snapshot string)
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]string)}
}

// Put sets a document's content unconditionally.
func (s *MemStore) Put(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[path] = content
}

// Get returns a document's current content.
func (s *MemStore) Get(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.docs[path]
	return content, ok
}

// Read returns the document's full current content.
func (s *MemStore) Read(ctx context.Context, path string) (string, error) {
	s.mu.Lock()
	content, ok := s.docs[path]
	s.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("reading %s: document not found", path)
	}
	if s.OnRead != nil {
		s.OnRead(path, content)
	}
	return content, nil
}

// Documents returns every document keyed by path.
func (s *MemStore) Documents(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make(map[string]string, len(s.docs))
	for p, c := range s.docs {
		docs[p] = c
	}
	return docs, nil
}

// CompareAndSwap writes newContent only while the stored content still
// equals expected.
func (s *MemStore) CompareAndSwap(ctx context.Context, path string, expected, newContent string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.docs[path]
	if !ok {
		return false, fmt.Errorf("writing %s: document not found", path)
	}
	if current != expected {
		return false, nil
	}
	s.docs[path] = newContent
	return true, nil
}
