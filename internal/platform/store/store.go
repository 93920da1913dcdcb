// Package store provides the in-memory record store backing the default
// (fixture-seeded) repositories. Each store owns an ordered sequence of
// records and hands out copies, never references into its backing slice.
package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when an operation references a record id that does
// not exist. Postgres repositories map pgx.ErrNoRows to this same error so
// callers only ever check one sentinel.
var ErrNotFound = errors.New("record not found")

// Record is the contract every stored entity satisfies. Clone must return a
// deep copy so callers can mutate results freely.
type Record[T any] interface {
	RecordID() int
	WithRecordID(id int) T
	Clone() T
}

// Store holds an ordered in-memory sequence of records. Ids are assigned as
// max(existing, 0)+1 on create. An optional fixed latency emulates a remote
// call; zero latency is the default.
type Store[T Record[T]] struct {
	mu      sync.Mutex
	records []T
	latency time.Duration
}

// New creates a store seeded with the given records, preserving their order
// and ids. The seed slice is copied; the caller keeps ownership of its slice.
func New[T Record[T]](seed []T, latency time.Duration) *Store[T] {
	s := &Store[T]{latency: latency}
	s.records = make([]T, 0, len(seed))
	for _, r := range seed {
		s.records = append(s.records, r.Clone())
	}
	return s
}

// wait blocks for the configured artificial latency, honoring cancellation.
func (s *Store[T]) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// GetAll returns a copy of every record in insertion order.
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	return out, nil
}

// GetByID returns a copy of the record with the given id or ErrNotFound.
func (s *Store[T]) GetByID(ctx context.Context, id int) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.RecordID() == id {
			return r.Clone(), nil
		}
	}
	return zero, ErrNotFound
}

// Create assigns the next id (one past the current maximum, 1 when empty),
// appends the record and returns a copy of what was stored.
func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	maxID := 0
	for _, r := range s.records {
		if r.RecordID() > maxID {
			maxID = r.RecordID()
		}
	}
	stored := rec.WithRecordID(maxID + 1).Clone()
	s.records = append(s.records, stored)
	return stored.Clone(), nil
}

// Update applies fn to the record with the given id, stores the result and
// returns a copy of it. Returns ErrNotFound when the id is absent.
func (s *Store[T]) Update(ctx context.Context, id int, fn func(T) T) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.RecordID() == id {
			updated := fn(r.Clone()).WithRecordID(id)
			s.records[i] = updated.Clone()
			return updated.Clone(), nil
		}
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given id and returns a copy of it.
func (s *Store[T]) Delete(ctx context.Context, id int) (T, error) {
	var zero T
	if err := s.wait(ctx); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.RecordID() == id {
			removed := r.Clone()
			s.records = append(s.records[:i], s.records[i+1:]...)
			return removed, nil
		}
	}
	return zero, ErrNotFound
}

// Find returns copies of every record matching pred, insertion order
// preserved.
func (s *Store[T]) Find(ctx context.Context, pred func(T) bool) ([]T, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []T
	for _, r := range s.records {
		if pred(r) {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}
