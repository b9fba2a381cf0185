package arr

import "errors"

// ErrNoMatchingItems is returned by [FindLastOrFail] when no element
// satisfies the predicate.
var ErrNoMatchingItems = errors.New("arr: no items match the given condition")
