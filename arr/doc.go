// Package arr provides standalone generic helper functions for Go slices:
// selection, transformation, folding and pairing.
//
// Every helper operates on plain []T values, allocates its result, and leaves
// the input untouched:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	last, ok := arr.FindLast(txs, func(t Tx) bool { return t.Amount > 200 })
//	pairs := arr.PairIf([]int{1, 2}, []int{2, 3}, func(x, y int) bool { return x < y })
//	sum := arr.Reduce([]int{1, 2, 3, 4}, func(n, acc int) int { return acc + n }, 0)
//
// # Absence
//
// [FindLast] and [First] return a presence flag alongside the value. A false
// flag means no element matched and the value is the zero value of T.
//
// # Reducer argument order
//
// [Reduce] passes (element, accumulator), not (accumulator, element).
//
// # Pairing cost
//
// [PairIf] evaluates the full cross product. When the predicate implies the
// equality of a key derivable from each side, [PairIfKeyed] yields identical
// output through a hash join.
package arr
