package query

import (
	"context"
	"sort"
	"sync"

	"querylens/internal/gateway/entity"
)

// MemoryStore is the in-memory query source used when no database is
// configured, and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	queries []entity.Query
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Put adds or replaces records by id.
func (s *MemoryStore) Put(queries ...entity.Query) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range queries {
		replaced := false
		for i := range s.queries {
			if s.queries[i].ID == q.ID {
				s.queries[i] = q
				replaced = true
				break
			}
		}
		if !replaced {
			s.queries = append(s.queries, q)
		}
	}
}

// Find looks a record up by id.
func (s *MemoryStore) Find(id string) (entity.Query, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.queries {
		if q.ID == id {
			return q, true
		}
	}
	return entity.Query{}, false
}

func (s *MemoryStore) List(_ context.Context, userID entity.UserID, offset, limit int) ([]entity.Query, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Query, 0, len(s.queries))
	for _, q := range s.queries {
		if q.UserID == userID {
			matched = append(matched, q)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Impressions != matched[j].Impressions {
			return matched[i].Impressions > matched[j].Impressions
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) || limit <= 0 {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	out := make([]entity.Query, end-offset)
	copy(out, matched[offset:end])
	return out, nil
}
