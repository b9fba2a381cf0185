package collections

import "github.com/hasbyte1/figstats/arr"

// ErrNoMatchingItems is returned by [Collection.FindLastOrFail] when no
// item satisfies the predicate. It is the same value as
// [arr.ErrNoMatchingItems], so errors.Is works against either.
var ErrNoMatchingItems = arr.ErrNoMatchingItems
