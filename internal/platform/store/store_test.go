package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

type rec struct {
	ID   int
	Name string
	Tags []string
}

func (r rec) RecordID() int { return r.ID }

func (r rec) WithRecordID(id int) rec {
	r.ID = id
	return r
}

func (r rec) Clone() rec {
	out := r
	if r.Tags != nil {
		out.Tags = append([]string(nil), r.Tags...)
	}
	return out
}

func seeded() *Store[rec] {
	return New([]rec{
		{ID: 1, Name: "one"},
		{ID: 2, Name: "two"},
		{ID: 5, Name: "five"},
	}, 0)
}

func TestGetAllPreservesOrder(t *testing.T) {
	s := seeded()
	all, err := s.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	for i, want := range []int{1, 2, 5} {
		if all[i].ID != want {
			t.Errorf("record %d: expected id %d, got %d", i, want, all[i].ID)
		}
	}
}

func TestGetAllReturnsCopies(t *testing.T) {
	s := New([]rec{{ID: 1, Name: "one", Tags: []string{"a"}}}, 0)
	all, _ := s.GetAll(context.Background())
	all[0].Name = "mutated"
	all[0].Tags[0] = "mutated"

	again, _ := s.GetAll(context.Background())
	if again[0].Name != "one" || again[0].Tags[0] != "a" {
		t.Errorf("mutation of a returned record leaked into the store: %+v", again[0])
	}
}

func TestGetByID(t *testing.T) {
	s := seeded()
	r, err := s.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if r.Name != "two" {
		t.Errorf("expected name 'two', got %q", r.Name)
	}

	if _, err := s.GetByID(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	s := seeded()
	created, err := s.Create(context.Background(), rec{Name: "six"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 6 {
		t.Errorf("expected id 6 (max 5 + 1), got %d", created.ID)
	}
}

func TestCreateAfterDeleteReusesID(t *testing.T) {
	s := seeded()
	ctx := context.Background()
	if _, err := s.Delete(ctx, 5); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	created, err := s.Create(ctx, rec{Name: "three"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Max id after deleting 5 is 2, so the id is assigned again.
	if created.ID != 3 {
		t.Errorf("expected id 3, got %d", created.ID)
	}
}

func TestCreateEmptyStore(t *testing.T) {
	s := New[rec](nil, 0)
	created, err := s.Create(context.Background(), rec{Name: "first"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected id 1 on empty store, got %d", created.ID)
	}
}

func TestUpdate(t *testing.T) {
	s := seeded()
	updated, err := s.Update(context.Background(), 2, func(r rec) rec {
		r.Name = "changed"
		return r
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "changed" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}

	stored, _ := s.GetByID(context.Background(), 2)
	if stored.Name != "changed" {
		t.Errorf("update not persisted, got %q", stored.Name)
	}
}

func TestUpdateCannotChangeID(t *testing.T) {
	s := seeded()
	updated, err := s.Update(context.Background(), 2, func(r rec) rec {
		r.ID = 42
		return r
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != 2 {
		t.Errorf("update changed the record id to %d", updated.ID)
	}
}

func TestUpdateMissing(t *testing.T) {
	s := seeded()
	_, err := s.Update(context.Background(), 99, func(r rec) rec { return r })
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := seeded()
	ctx := context.Background()
	removed, err := s.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed.Name != "one" {
		t.Errorf("expected removed record 'one', got %q", removed.Name)
	}
	if _, err := s.GetByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("record still present after delete")
	}
	if _, err := s.Delete(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestFind(t *testing.T) {
	s := seeded()
	matched, err := s.Find(context.Background(), func(r rec) bool { return r.ID > 1 })
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	if matched[0].ID != 2 || matched[1].ID != 5 {
		t.Errorf("match order not preserved: %+v", matched)
	}
}

func TestLatencyHonorsCancellation(t *testing.T) {
	s := New([]rec{{ID: 1}}, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		_, err := s.GetAll(ctx)
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("GetAll did not return after cancellation")
	}
}
