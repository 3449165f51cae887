package tour

import "errors"

// ErrNotPermutation indicates a tour is not a permutation of {0..n-1}
// (wrong length, out-of-range element, or duplicate element).
var ErrNotPermutation = errors.New("tour: not a permutation of 0..n-1")

// Tour is an open permutation of 0-based city ranks, visited in order
// with an implied wrap-around edge from the last rank back to the first.
// len(Tour) equals the number of cities.
type Tour []int
