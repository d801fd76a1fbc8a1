package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemStore implements an in-memory Store, used by tests and the
// "memory" local driver.
type MemStore struct {
	mu     sync.RWMutex
	recs   []Record
	nextID int64
}

// NewMemStore creates a new in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{nextID: 1}
}

// Name identifies the backend.
func (s *MemStore) Name() string { return "memory" }

// Insert persists a record.
func (s *MemStore) Insert(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextID
	s.nextID++
	rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	s.recs = append(s.recs, rec)
	return nil
}

// Search returns records matching the query, ordered by importance descending.
func (s *MemStore) Search(ctx context.Context, q Query) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []Record
	for _, r := range s.recs {
		if q.Type != "" && r.Type != q.Type {
			continue
		}
		if q.Text != "" && !containsFold(r.Content, q.Text) {
			continue
		}
		matched = append(matched, Record{Type: r.Type, Content: r.Content, Importance: r.Importance})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Importance > matched[j].Importance
	})

	if len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

// Delete removes records whose content contains match and returns the count.
func (s *MemStore) Delete(ctx context.Context, match string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.recs[:0]
	deleted := 0
	for _, r := range s.recs {
		if containsFold(r.Content, match) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.recs = kept
	return deleted, nil
}

// Close implements Store.
func (s *MemStore) Close() error { return nil }

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
