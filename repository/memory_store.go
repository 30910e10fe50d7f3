package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is a Gateway held in process memory. Ids are assigned from a
// counter and never reused.
type MemoryStore[T any, PT Keyed[T]] struct {
	mu     sync.RWMutex
	rows   map[uint]T
	lastID uint
}

func NewMemoryStore[T any, PT Keyed[T]]() *MemoryStore[T, PT] {
	return &MemoryStore[T, PT]{rows: make(map[uint]T)}
}

func (s *MemoryStore[T, PT]) Create(_ context.Context, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := PT(rec).Key()
	if id == 0 {
		id = s.lastID + 1
	} else if _, ok := s.rows[id]; ok {
		return fmt.Errorf("create %d: %w", id, ErrConflict)
	}
	if id > s.lastID {
		s.lastID = id
	}

	PT(rec).SetKey(id)
	s.rows[id] = *rec
	return nil
}

func (s *MemoryStore[T, PT]) GetByID(_ context.Context, id uint) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.rows[id]
	if !ok {
		return nil, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return &rec, nil
}

func (s *MemoryStore[T, PT]) ListAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	recs := make([]T, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, s.rows[id])
	}
	return recs, nil
}

func (s *MemoryStore[T, PT]) Update(_ context.Context, id uint, rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	PT(rec).SetKey(id)
	s.rows[id] = *rec
	return nil
}

func (s *MemoryStore[T, PT]) PartialUpdate(_ context.Context, id uint, apply func(*T)) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.rows[id]
	if !ok {
		return nil, fmt.Errorf("partial update %d: %w", id, ErrNotFound)
	}
	apply(&rec)
	PT(&rec).SetKey(id)
	s.rows[id] = rec
	return &rec, nil
}

func (s *MemoryStore[T, PT]) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	delete(s.rows, id)
	return nil
}
