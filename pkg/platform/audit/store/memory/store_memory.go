package memory

import (
	"context"
	"sort"
	"sync"

	id "cineclub/pkg/domain"
	audit "cineclub/pkg/platform/audit"
)

// DefaultRetention bounds the number of events kept per user.
const DefaultRetention = 500

// InMemoryStore keeps a bounded audit trail per actor.
type InMemoryStore struct {
	mu        sync.RWMutex
	events    map[id.UserID][]audit.Event
	retention int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[id.UserID][]audit.Event), retention: DefaultRetention}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[id.UserID][]audit.Event)
}

// Emit appends event, dropping the oldest entries past the retention bound.
func (s *InMemoryStore) Emit(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := append(s.events[event.UserID], event)
	if len(list) > s.retention {
		list = list[len(list)-s.retention:]
	}
	s.events[event.UserID] = list
	return nil
}

// ListByUser returns an actor's events newest first.
func (s *InMemoryStore) ListByUser(_ context.Context, userID id.UserID, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	src := s.events[userID]
	out := make([]audit.Event, len(src))
	copy(out, src)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ListRecent returns the most recent events across all users.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	var all []audit.Event
	for _, userEvents := range s.events {
		all = append(all, userEvents...)
	}
	s.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
