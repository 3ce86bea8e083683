// Package item implements the in-memory item store.
//
// Items live only for the lifetime of the process; there is no persistence
// layer. Ids are assigned from a monotonically increasing counter starting
// at 1 and are never reused.
package item

import (
	"errors"
	"sync"
)

// ErrEmptyName is returned when creating an item with an empty name.
var ErrEmptyName = errors.New("item name must not be empty")

// Item is a stored item. Immutable once created.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Store holds items in insertion order.
type Store struct {
	mu     sync.RWMutex
	items  []Item // Protected by mu
	nextID int    // Protected by mu
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		items:  []Item{},
		nextID: 1,
	}
}

// Add validates the name, assigns the next id, and appends the item.
// Safe for concurrent use.
func (s *Store) Add(name string) (Item, error) {
	if name == "" {
		return Item{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it := Item{ID: s.nextID, Name: name}
	s.items = append(s.items, it)
	s.nextID++

	return it, nil
}

// List returns all items in insertion order. The returned slice is a copy;
// callers cannot mutate store state through it.
func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
