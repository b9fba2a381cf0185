package arr

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new slice holding the elements for which fn returns true,
// in their original relative order. The input is never modified.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
func Reject[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T) bool { return !fn(item) })
}

// FindLast returns the element at the greatest index that satisfies fn.
// The scan runs from the end of items down to and including index 0.
// Returns the zero value and false when no element matches; callers must
// check the flag before using the value.
func FindLast[T any](items []T, fn func(T) bool) (T, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// FindLastOrFail is like [FindLast] but reports absence as
// [ErrNoMatchingItems].
func FindLastOrFail[T any](items []T, fn func(T) bool) (T, error) {
	item, ok := FindLast(items, fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// First returns the first element satisfying fn.
func First[T any](items []T, fn func(T) bool) (T, bool) {
	for _, item := range items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	_, ok := First(items, fn)
	return ok
}

// Count returns the number of elements satisfying fn.
func Count[T any](items []T, fn func(T) bool) int {
	n := 0
	for _, item := range items {
		if fn(item) {
			n++
		}
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a slice of the same length
// where out[i] == fn(items[i]).
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Reduce folds items from left to right into a single value.
//
// The reducer receives the element first and the accumulator second:
//
//	sum := arr.Reduce([]int{1, 2, 3, 4}, func(n, acc int) int { return acc + n }, 0) // 10
//
// The accumulator may be mutated in place and returned, or replaced.
func Reduce[T, Acc any](items []T, fn func(T, Acc) Acc, initial Acc) Acc {
	acc := initial
	for _, item := range items {
		acc = fn(item, acc)
	}
	return acc
}

// UniqueBy returns the elements whose key has not been seen before.
// The first occurrence of each key wins and order is preserved.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// GroupBy groups items by a comparable key K extracted by fn.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		out[k] = append(out[k], item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Pairing
// ─────────────────────────────────────────────────────────────────────────────

// Pair holds two values of possibly different types. It is the element type
// produced by [PairIf] and [PairIfKeyed].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// PairIf tests every (a[i], b[j]) combination and keeps the pairs for which
// fn returns true. Pairs are emitted in row-major order: i is the outer loop
// and j the inner one.
//
// Joining a slice with itself on a symmetric relation yields every match
// twice, once as (x, y) and once as (y, x). Divide the result length by two
// to count unordered pairs.
//
// The cost is len(a)*len(b) calls to fn. See [PairIfKeyed] for larger inputs.
func PairIf[A, B any](a []A, b []B, fn func(A, B) bool) []Pair[A, B] {
	out := []Pair[A, B]{}
	for _, x := range a {
		for _, y := range b {
			if fn(x, y) {
				out = append(out, Pair[A, B]{First: x, Second: y})
			}
		}
	}
	return out
}

// PairIfKeyed returns the same pairs, in the same order, as
//
//	PairIf(a, b, func(x A, y B) bool { return keyA(x) == keyB(y) && fn(x, y) })
//
// but only calls fn for candidates whose keys are equal. b is indexed once by
// keyB, so the cost is linear in len(a)+len(b) plus the number of key matches.
// fn may be nil when key equality alone decides the match.
func PairIfKeyed[A, B any, K comparable](a []A, b []B, keyA func(A) K, keyB func(B) K, fn func(A, B) bool) []Pair[A, B] {
	// positions in b per key, ascending, so row-major order is kept
	index := make(map[K][]int, len(b))
	for j, y := range b {
		k := keyB(y)
		index[k] = append(index[k], j)
	}

	out := []Pair[A, B]{}
	for _, x := range a {
		for _, j := range index[keyA(x)] {
			if fn == nil || fn(x, b[j]) {
				out = append(out, Pair[A, B]{First: x, Second: b[j]})
			}
		}
	}
	return out
}
