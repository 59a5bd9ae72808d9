package store

import (
	"errors"
	"testing"

	"TodoWebService/models"
)

// TestListCreationOrder checks that List returns todos in the order they were created,
// even when ids are not inserted in ascending order.
func TestListCreationOrder(t *testing.T) {
	s := New()
	ids := []int{5, 1, 9, 3}
	for _, id := range ids {
		err := s.Create(models.Todo{Id: id, Item: "item"})
		if err != nil {
			t.Fatalf("Create(%d) returned error: %v", id, err)
		}
	}
	todos := s.List()
	if len(todos) != len(ids) {
		t.Fatalf("Expected %d todos, got %d", len(ids), len(todos))
	}
	for i, id := range ids {
		if todos[i].Id != id {
			t.Errorf("Expected todo at index %d to have id %d, got %d", i, id, todos[i].Id)
		}
	}
}

// TestCreateDuplicateID checks that a duplicate id is rejected and the store is unchanged.
func TestCreateDuplicateID(t *testing.T) {
	s := New()
	if err := s.Create(models.Todo{Id: 1, Item: "first"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	err := s.Create(models.Todo{Id: 1, Item: "second"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Expected ErrDuplicateID, got %v", err)
	}
	todo, err := s.Get(1)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if todo.Item != "first" {
		t.Errorf("Expected store to keep the original item, got %q", todo.Item)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 todo in the store, got %d", s.Len())
	}
}

// TestMissingID checks that every operation on an absent id fails with ErrNotFound
// and leaves the store unchanged.
func TestMissingID(t *testing.T) {
	s := New()
	if err := s.Create(models.Todo{Id: 1, Item: "keep me"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := s.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Update(42, "new item", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Toggle(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Toggle: expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Expected the store to be unchanged, got %d todos", s.Len())
	}
}

// TestToggleTwiceRestores checks that toggling a todo twice restores its original flag.
func TestToggleTwiceRestores(t *testing.T) {
	s := New()
	if err := s.Create(models.Todo{Id: 7, Item: "toggle me"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	first, err := s.Toggle(7)
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if !first.Completed {
		t.Error("Expected completed to be true after the first toggle")
	}
	second, err := s.Toggle(7)
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if second.Completed {
		t.Error("Expected completed to be false after the second toggle")
	}
}

// TestUpdateReplacesFields checks that Update replaces item and completed exactly as given.
func TestUpdateReplacesFields(t *testing.T) {
	s := New()
	if err := s.Create(models.Todo{Id: 2, Item: "original", Completed: true}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	updated, err := s.Update(2, "replaced", false)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Item != "replaced" || updated.Completed {
		t.Errorf("Expected item %q and completed false, got %q and %v", "replaced", updated.Item, updated.Completed)
	}
	if updated.Id != 2 {
		t.Errorf("Expected the id to be immutable, got %d", updated.Id)
	}
}

// TestDeleteRemovesExactlyOne checks that Delete removes one record and a later Get fails.
func TestDeleteRemovesExactlyOne(t *testing.T) {
	s := New()
	for id := 1; id <= 3; id++ {
		if err := s.Create(models.Todo{Id: id, Item: "item"}); err != nil {
			t.Fatalf("Create(%d) returned error: %v", id, err)
		}
	}
	if err := s.Delete(2); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := s.Get(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	todos := s.List()
	if len(todos) != 2 {
		t.Fatalf("Expected 2 todos after delete, got %d", len(todos))
	}
	if todos[0].Id != 1 || todos[1].Id != 3 {
		t.Errorf("Expected remaining ids [1 3], got [%d %d]", todos[0].Id, todos[1].Id)
	}
}
