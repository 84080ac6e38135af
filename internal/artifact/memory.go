package artifact

import (
	"context"
	"sync"
)

// Object is one stored artifact as seen by the MemoryStore.
type Object struct {
	Content     []byte
	ContentType string
}

// MemoryStore records puts in memory; used by tests to assert on what the
// orchestrator stored.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]Object
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]Object)}
}

func (s *MemoryStore) Put(_ context.Context, key string, content []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = Object{Content: content, ContentType: contentType}
	return nil
}

func (s *MemoryStore) Get(key string) (Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	return obj, ok
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
