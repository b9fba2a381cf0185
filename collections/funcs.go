package collections

import "github.com/hasbyte1/figstats/arr"

// This file contains package-level generic functions for operations that
// transform a Collection[T] into something other than a Collection[T].
//
// They compose with method chains:
//
//	names := collections.Map(
//	    collections.From(customers).Filter(isActive),
//	    func(c Customer) string { return c.FullName() },
//	)

// Map applies fn to every item and returns a new Collection[U] of the same
// length.
func Map[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return wrap(arr.Map(c.items, fn))
}

// Reduce folds Collection[T] from left to right into a single value.
// fn receives (item, accumulator).
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(n, acc int) int { return acc + n }, 0)
func Reduce[T, Acc any](c *Collection[T], fn func(T, Acc) Acc, initial Acc) Acc {
	return arr.Reduce(c.items, fn, initial)
}

// PairIf cross-joins a and b, keeping the pairs for which fn returns true,
// in row-major order. See [arr.PairIf].
func PairIf[A, B any](a *Collection[A], b *Collection[B], fn func(A, B) bool) *Collection[arr.Pair[A, B]] {
	return wrap(arr.PairIf(a.items, b.items, fn))
}

// PairIfKeyed is the hash-join form of [PairIf]. See [arr.PairIfKeyed].
func PairIfKeyed[A, B any, K comparable](a *Collection[A], b *Collection[B], keyA func(A) K, keyB func(B) K, fn func(A, B) bool) *Collection[arr.Pair[A, B]] {
	return wrap(arr.PairIfKeyed(a.items, b.items, keyA, keyB, fn))
}

// GroupBy groups items by the comparable key K extracted by fn.
//
//	byProduct := collections.GroupBy(txs,
//	    func(t Tx) string { return t.Product })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]*Collection[T] {
	groups := arr.GroupBy(c.items, fn)
	out := make(map[K]*Collection[T], len(groups))
	for k, items := range groups {
		out[k] = wrap(items)
	}
	return out
}
