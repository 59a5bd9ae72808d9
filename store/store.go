// Package store holds the in-process collection of todo records.
//
// The store is an explicitly owned object passed to the request-handling
// layer, not a package global. Lookups go through a map keyed by id while a
// parallel id slice preserves insertion order, so List always returns todos
// in creation order. A RWMutex serializes mutations because both API
// implementations serve requests from concurrent connections.
package store

import (
	"errors"
	"sync"

	"TodoWebService/models"
)

var (
	// ErrNotFound is returned when no stored todo has the requested id.
	ErrNotFound = errors.New("todo not found")
	// ErrDuplicateID is returned by Create when the id is already taken.
	ErrDuplicateID = errors.New("todo with this id already exists")
)

// Store is the in-memory todo collection. The zero value is not usable; use New.
type Store struct {
	mu    sync.RWMutex
	byID  map[int]models.Todo
	order []int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		byID: make(map[int]models.Todo),
	}
}

// List returns all todos in creation order. The returned slice is a copy.
func (s *Store) List() []models.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	todos := make([]models.Todo, 0, len(s.order))
	for _, id := range s.order {
		todos = append(todos, s.byID[id])
	}
	return todos
}

// Get returns the todo with the given id.
func (s *Store) Get(id int) (models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	todo, ok := s.byID[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	return todo, nil
}

// Create stores a new todo. The id must not collide with an existing record.
func (s *Store) Create(todo models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[todo.Id]; ok {
		return ErrDuplicateID
	}
	s.byID[todo.Id] = todo
	s.order = append(s.order, todo.Id)
	return nil
}

// Update replaces the item and completed fields of the todo with the given id.
func (s *Store) Update(id int, item string, completed bool) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todo, ok := s.byID[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	todo.Item = item
	todo.Completed = completed
	s.byID[id] = todo
	return todo, nil
}

// Toggle inverts the completed flag of the todo with the given id.
func (s *Store) Toggle(id int) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todo, ok := s.byID[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	todo.Completed = !todo.Completed
	s.byID[id] = todo
	return todo, nil
}

// Delete removes the todo with the given id.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, storedID := range s.order {
		if storedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored todos.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
