package audit

import (
	"context"
	"sync"

	"querylens/internal/gateway/entity"
)

type Event struct {
	UserID  entity.UserID
	Action  string
	Details map[string]any
}

type MemoryStore struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Record(_ context.Context, userID entity.UserID, action string, details map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{UserID: userID, Action: action, Details: details})
	return nil
}

func (s *MemoryStore) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
