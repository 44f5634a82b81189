// Package collection provides the ordered, duplicate-free lists that hold
// contacts and events.
package collection

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/tartampluch/go-contactbook/internal/config"
)

var (
	// ErrDuplicate is returned when an operation would make two elements
	// share an identity key or identity token.
	ErrDuplicate = errors.New(config.ErrDuplicateEntity)

	// ErrNotFound is returned when the target of a replace or remove is absent.
	ErrNotFound = errors.New(config.ErrEntityNotFound)
)

// Entity is anything that can be stored in a UniqueList.
// ID is the stable identity token; Key is the natural uniqueness key.
type Entity interface {
	ID() uuid.UUID
	Key() string
}

// UniqueList is an ordered sequence in which no two elements share a Key
// or an ID. Insertion order is preserved.
// The zero value is an empty, ready-to-use list.
type UniqueList[T Entity] struct {
	items []T
}

// NewUniqueList builds a list from items, rejecting duplicates.
func NewUniqueList[T Entity](items []T) (*UniqueList[T], error) {
	l := &UniqueList[T]{}
	if err := l.SetItems(items); err != nil {
		return nil, err
	}
	return l, nil
}

// Len returns the number of elements.
func (l *UniqueList[T]) Len() int { return len(l.items) }

// Items returns a copy of the elements in order, or nil when empty.
func (l *UniqueList[T]) Items() []T {
	if len(l.items) == 0 {
		return nil
	}
	return slices.Clone(l.items)
}

// Contains reports whether an element with the same key or id is present.
func (l *UniqueList[T]) Contains(x T) bool {
	return l.indexOfKey(x.Key()) >= 0 || l.indexOfID(x.ID()) >= 0
}

// Get returns the element with identity token id.
func (l *UniqueList[T]) Get(id uuid.UUID) (T, bool) {
	if i := l.indexOfID(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// Add appends x.
func (l *UniqueList[T]) Add(x T) error {
	if l.Contains(x) {
		return ErrDuplicate
	}
	l.items = append(l.items, x)
	return nil
}

// Set replaces the element whose id matches target with edited, in place.
// edited may keep target's key; it must not collide with any other element.
func (l *UniqueList[T]) Set(target, edited T) error {
	i := l.indexOfID(target.ID())
	if i < 0 {
		return ErrNotFound
	}
	if k := l.indexOfKey(edited.Key()); k >= 0 && k != i {
		return ErrDuplicate
	}
	if k := l.indexOfID(edited.ID()); k >= 0 && k != i {
		return ErrDuplicate
	}
	l.items[i] = edited
	return nil
}

// Remove deletes the element whose id matches x.
func (l *UniqueList[T]) Remove(x T) error {
	i := l.indexOfID(x.ID())
	if i < 0 {
		return ErrNotFound
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// SetItems replaces the whole content. The list is left untouched if
// items contains duplicates.
func (l *UniqueList[T]) SetItems(items []T) error {
	keys := make(map[string]struct{}, len(items))
	ids := make(map[uuid.UUID]struct{}, len(items))
	for _, x := range items {
		if _, dup := keys[x.Key()]; dup {
			return ErrDuplicate
		}
		if _, dup := ids[x.ID()]; dup {
			return ErrDuplicate
		}
		keys[x.Key()] = struct{}{}
		ids[x.ID()] = struct{}{}
	}
	l.items = slices.Clone(items)
	return nil
}

// Sort reorders the elements with a stable sort.
func (l *UniqueList[T]) Sort(cmp func(a, b T) int) {
	slices.SortStableFunc(l.items, cmp)
}

// Filter returns, in order, the elements accepted by keep.
func (l *UniqueList[T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, x := range l.items {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

func (l *UniqueList[T]) indexOfKey(key string) int {
	return slices.IndexFunc(l.items, func(x T) bool { return x.Key() == key })
}

func (l *UniqueList[T]) indexOfID(id uuid.UUID) int {
	return slices.IndexFunc(l.items, func(x T) bool { return x.ID() == id })
}
