package nav

import "errors"

// ErrEmptyRegistry is returned when a registry or selector is built with no entries.
var ErrEmptyRegistry = errors.New("nav: registry must contain at least one entry")

// Registry is an ordered, immutable sequence of entries.
// Entries are opaque to the registry; order is the authored order.
type Registry[T any] struct {
	items []T
}

// NewRegistry copies items into a new registry.
// Returns ErrEmptyRegistry when items is empty.
func NewRegistry[T any](items ...T) (*Registry[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyRegistry
	}
	cp := make([]T, len(items))
	copy(cp, items)
	return &Registry[T]{items: cp}, nil
}

// Len returns the number of entries (always >= 1).
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// At returns the entry at index i. It panics if i is out of range,
// which a Deck built from the same registry never produces.
func (r *Registry[T]) At(i int) T {
	return r.items[i]
}

// All returns a copy of the entries in order.
func (r *Registry[T]) All() []T {
	cp := make([]T, len(r.items))
	copy(cp, r.items)
	return cp
}
