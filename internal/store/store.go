// internal/store/store.go
package store

import (
	"sync"

	"github.com/google/uuid"

	"facilityhub/internal/models"
)

// Entity is anything held in a Store: it must expose a stable id.
type Entity interface {
	EntityID() uuid.UUID
}

// Patch is a partial update overlaid onto an existing record.
type Patch[T any] interface {
	Apply(T) T
}

// Store is an ordered in-memory collection of one entity kind. Each kind
// owns its own Store exclusively; there is no cross-store referential
// integrity — dangling by-id references are the caller's concern.
//
// All operations run synchronously and are observable as soon as they
// return. The mutex is here because HTTP callers are concurrent, not
// because any operation suspends.
type Store[T Entity, P Patch[T]] struct {
	mu       sync.RWMutex
	items    []T
	selected *uuid.UUID
	onChange []func()
}

func New[T Entity, P Patch[T]]() *Store[T, P] {
	return &Store[T, P]{}
}

// OnChange registers fn to run after every successful mutation. Callbacks
// run outside the store lock, in registration order, on the mutating
// goroutine.
func (s *Store[T, P]) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

func (s *Store[T, P]) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.onChange))
	copy(subs, s.onChange)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// ReplaceAll swaps in the full collection; insertion order is the given
// order. The selection is preserved only if the selected id survives.
func (s *Store[T, P]) ReplaceAll(items []T) {
	s.mu.Lock()
	s.items = make([]T, len(items))
	copy(s.items, items)
	if s.selected != nil {
		if _, ok := s.lookup(*s.selected); !ok {
			s.selected = nil
		}
	}
	s.mu.Unlock()
	s.notify()
}

// Add appends the item. The caller mints the id (handlers use uuid.New);
// an id colliding with an existing item is rejected with ErrDuplicateID so
// lookups never turn ambiguous.
func (s *Store[T, P]) Add(item T) (T, error) {
	s.mu.Lock()
	if _, ok := s.lookup(item.EntityID()); ok {
		s.mu.Unlock()
		var zero T
		return zero, models.ErrDuplicateID
	}
	s.items = append(s.items, item)
	s.mu.Unlock()
	s.notify()
	return item, nil
}

// Update shallow-merges the patch into the item with the given id. The
// collection is untouched when the id is absent; ErrNotFound signals that
// to callers who care.
func (s *Store[T, P]) Update(id uuid.UUID, patch P) (T, error) {
	s.mu.Lock()
	i, ok := s.lookup(id)
	if !ok {
		s.mu.Unlock()
		var zero T
		return zero, models.ErrNotFound
	}
	s.items[i] = patch.Apply(s.items[i])
	updated := s.items[i]
	s.mu.Unlock()
	s.notify()
	return updated, nil
}

// Delete removes the item with the given id. Deleting the selected item
// clears the selection. Absent id leaves the collection unchanged and
// returns ErrNotFound.
func (s *Store[T, P]) Delete(id uuid.UUID) error {
	s.mu.Lock()
	i, ok := s.lookup(id)
	if !ok {
		s.mu.Unlock()
		return models.ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	if s.selected != nil && *s.selected == id {
		s.selected = nil
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// Get returns the item with the given id.
func (s *Store[T, P]) Get(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.lookup(id); ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// List returns a snapshot of the collection in insertion order.
func (s *Store[T, P]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Select records the currently focused item for detail views, or clears it
// when id is uuid.Nil. Selecting an id not present in the collection
// returns ErrNotFound.
func (s *Store[T, P]) Select(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == uuid.Nil {
		s.selected = nil
		return nil
	}
	if _, ok := s.lookup(id); !ok {
		return models.ErrNotFound
	}
	sel := id
	s.selected = &sel
	return nil
}

// Selected returns the focused item, if any.
func (s *Store[T, P]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	if s.selected == nil {
		return zero, false
	}
	if i, ok := s.lookup(*s.selected); ok {
		return s.items[i], true
	}
	return zero, false
}

// lookup returns the index of the first item matching id. Callers hold the
// lock.
func (s *Store[T, P]) lookup(id uuid.UUID) (int, bool) {
	for i := range s.items {
		if s.items[i].EntityID() == id {
			return i, true
		}
	}
	return 0, false
}
