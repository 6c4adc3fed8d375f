package group

import (
	"context"
	"fmt"
	"sync"

	"querylens/internal/gateway/entity"
)

// MemoryStore backs the group store when no database is configured, and
// in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	groups  map[string]entity.Group
	items   map[string][]string
	metrics map[string]entity.GroupMetrics

	// Resolve maps a query id to its record for metric recomputation.
	// Unresolvable ids contribute nothing to the aggregate.
	Resolve func(queryID string) (entity.Query, bool)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		groups:  make(map[string]entity.Group),
		items:   make(map[string][]string),
		metrics: make(map[string]entity.GroupMetrics),
	}
}

func (s *MemoryStore) Create(_ context.Context, g entity.Group) (entity.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[g.ID]; ok {
		return entity.Group{}, fmt.Errorf("group %s already exists", g.ID)
	}
	s.groups[g.ID] = g
	return g, nil
}

func (s *MemoryStore) AddItems(_ context.Context, groupID string, queryIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[groupID]; !ok {
		return ErrNotFound
	}
	s.items[groupID] = append(s.items[groupID], queryIDs...)
	return nil
}

func (s *MemoryStore) RecomputeMetrics(_ context.Context, groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[groupID]; !ok {
		return ErrNotFound
	}
	ids := s.items[groupID]
	var queries []entity.Query
	if s.Resolve != nil {
		for _, id := range ids {
			if q, ok := s.Resolve(id); ok {
				queries = append(queries, q)
			}
		}
	}
	m := entity.AggregateQueryMetrics(queries)
	m.QueryCount = len(ids)
	s.metrics[groupID] = m
	return nil
}

func (s *MemoryStore) GetWithMetrics(_ context.Context, groupID string) (entity.GroupWithMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[groupID]
	if !ok {
		return entity.GroupWithMetrics{}, ErrNotFound
	}
	return entity.GroupWithMetrics{Group: g, Metrics: s.metrics[groupID]}, nil
}
