package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps the newest capacity activities in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	items    []*Activity
	capacity int
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 20
	}
	return &MemoryStore{capacity: capacity}
}

func (s *MemoryStore) Record(_ context.Context, a *Activity) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	cp := *a

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, &cp)
	if over := len(s.items) - s.capacity; over > 0 {
		s.items = append([]*Activity(nil), s.items[over:]...)
	}
	return nil
}

// Recent returns up to limit activities, newest first.
func (s *MemoryStore) Recent(_ context.Context, limit int) ([]*Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*Activity, 0, n)
	for i := len(s.items) - 1; i >= 0 && len(out) < n; i-- {
		cp := *s.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
