// Package collections provides a generic, fluent Collection type built on the
// slice helpers of package arr.
//
// # Overview
//
// [Collection][T] wraps a slice of T and exposes a chainable API:
//
//	n := collections.From(txs).
//	    Filter(func(t Tx) bool { return !t.Valid() }).
//	    Count()
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [Reduce], [PairIf], [PairIfKeyed], [GroupBy].
//
//	names := collections.Map(
//	    collections.PairIf(txs, customers, ownsLarge),
//	    func(p arr.Pair[Tx, Customer]) string { return p.Second.FullName() },
//	)
package collections
