package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// Store implements ports.RunStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.RunRecord
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.RunRecord),
	}
}

func clone(run *domain.RunRecord) *domain.RunRecord {
	copied := *run
	copied.Word = slices.Clone(run.Word)
	copied.Trace = slices.Clone(run.Trace)
	return &copied
}

// Save persists the record in memory.
func (s *Store) Save(ctx context.Context, run *domain.RunRecord) error {
	// Copy to ensure isolation, similar to serialization
	copied := clone(run)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[run.ID] = copied
	return nil
}

// Load retrieves the record from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.data[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return clone(run), nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored IDs ordered by creation time, then ID.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	runs := make([]*domain.RunRecord, 0, len(s.data))
	for _, run := range s.data {
		runs = append(runs, run)
	}
	s.mu.RUnlock()

	slices.SortFunc(runs, func(a, b *domain.RunRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	ids := make([]string, len(runs))
	for i, run := range runs {
		ids[i] = run.ID
	}
	return ids, nil
}
