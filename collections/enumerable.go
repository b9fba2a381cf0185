package collections

// Enumerable is the read-only surface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can substitute
// alternative implementations without depending on *Collection.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn for every item in order.
	Each(fn func(T))

	// Filter returns a new collection containing only items for which
	// fn returns true.
	Filter(fn func(T) bool) *Collection[T]

	// FindLast returns the last item matching fn. Returns the zero value
	// and false when no item matches.
	FindLast(fn func(T) bool) (T, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool
}

var _ Enumerable[int] = (*Collection[int])(nil)
