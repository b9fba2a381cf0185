package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/figstats/arr"
)

// Collection is a generic, immutable wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a Collection may be read from several
// goroutines without locking.
//
//	large := collections.From(txs).
//	    Filter(func(t Tx) bool { return t.Amount > 200 }).
//	    Count()
//
// Operations that change the element type ([Map], [Reduce], [PairIf],
// [PairIfKeyed], [GroupBy]) are package-level functions because methods
// cannot introduce type parameters.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// wrap takes ownership of items without copying. Only for slices freshly
// allocated by arr.
func wrap[T any](items []T) *Collection[T] {
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Each calls fn for every item in order.
func (c *Collection[T]) Each(fn func(T)) {
	for _, item := range c.items {
		fn(item)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item matching fn.
// Returns the zero value and false when no item satisfies fn.
func (c *Collection[T]) First(fn func(T) bool) (T, bool) {
	return arr.First(c.items, fn)
}

// FindLast returns the last item matching fn, scanning from the end down to
// the first item inclusive. Returns the zero value and false when no item
// satisfies fn.
func (c *Collection[T]) FindLast(fn func(T) bool) (T, bool) {
	return arr.FindLast(c.items, fn)
}

// FindLastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FindLastOrFail(fn func(T) bool) (T, error) {
	return arr.FindLastOrFail(c.items, fn)
}

// Contains reports whether any item satisfies fn.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	return arr.Contains(c.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection of items for which fn returns true.
func (c *Collection[T]) Filter(fn func(T) bool) *Collection[T] {
	return wrap(arr.Filter(c.items, fn))
}

// Reject is the inverse of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T) bool) *Collection[T] {
	return wrap(arr.Reject(c.items, fn))
}

// UniqueBy removes items whose key, extracted by fn, was already seen.
// The key must be comparable at runtime; comparing uncomparable keys panics.
func (c *Collection[T]) UniqueBy(fn func(T) any) *Collection[T] {
	return wrap(arr.UniqueBy(c.items, fn))
}
