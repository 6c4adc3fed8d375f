package runreport

import (
	"context"
	"sort"
	"sync"
)

type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, runID string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(content))
	copy(buf, content)
	s.reports[runID] = buf
	return nil
}

func (s *MemoryStore) Get(_ context.Context, runID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.reports[runID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.reports))
	for id := range s.reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
