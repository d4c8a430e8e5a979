// Package demo is the todo application mounted by "easystate run" and
// "easystate inspect".
package demo

import (
	"fmt"

	"github.com/go-drift/easystate/pkg/observer"
)

// Filters accepted by Store.SetFilter.
const (
	FilterAll    = "all"
	FilterActive = "active"
	FilterDone   = "done"
)

// Todo is one entry in the store.
type Todo struct {
	Title string
	Done  bool
}

// Store holds the application state as observable values. Components that
// read it during render re-render when it changes.
type Store struct {
	Todos  *observer.Map[int, Todo]
	Filter *observer.Value[string]
	nextID int
}

// NewStore creates an empty store showing all todos.
func NewStore() *Store {
	return &Store{
		Todos:  observer.NewMap[int, Todo](),
		Filter: observer.NewValue(FilterAll),
	}
}

// Add appends a todo and returns its id.
func (s *Store) Add(title string) int {
	s.nextID++
	s.Todos.Set(s.nextID, Todo{Title: title})
	return s.nextID
}

// Toggle flips the done flag of id.
func (s *Store) Toggle(id int) {
	todo, ok := s.Todos.Get(id)
	if !ok {
		return
	}
	todo.Done = !todo.Done
	s.Todos.Set(id, todo)
}

// Remove deletes id.
func (s *Store) Remove(id int) {
	s.Todos.Delete(id)
}

// SetFilter selects which todos are visible.
func (s *Store) SetFilter(filter string) error {
	switch filter {
	case FilterAll, FilterActive, FilterDone:
		s.Filter.Set(filter)
		return nil
	}
	return fmt.Errorf("unknown filter %q", filter)
}

// Visible returns the ids shown under the current filter, in insertion
// order.
func (s *Store) Visible() []int {
	filter := s.Filter.Get()
	var ids []int
	for _, id := range s.Todos.Keys() {
		todo, _ := s.Todos.Get(id)
		switch {
		case filter == FilterActive && todo.Done:
		case filter == FilterDone && !todo.Done:
		default:
			ids = append(ids, id)
		}
	}
	return ids
}

// Remaining counts todos not yet done.
func (s *Store) Remaining() int {
	n := 0
	for _, id := range s.Todos.Keys() {
		if todo, _ := s.Todos.Get(id); !todo.Done {
			n++
		}
	}
	return n
}
