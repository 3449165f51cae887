// Package tour models candidate TSP solutions and their swap neighborhood.
//
// Representation:
//
//	A Tour is an open permutation []int of 0-based city ranks, length
//	exactly n, interpreted cyclically — the edge from the last element
//	back to the first is implied. No closing duplicate is stored: the
//	swap neighborhood treats every position uniformly, including 0, so
//	a pinned start vertex would only get in the way.
//
// Provided operations:
//   - Random:        uniform random permutation (unbiased Fisher–Yates).
//   - Length:        cyclic route length over a dist.Table, stabilized to 1e-9.
//   - Neighbors:     all C(n,2) single-transposition variants, independent copies.
//   - NeighborCount: closed form n(n-1)/2.
//   - Validate:      permutation check for boundary inputs.
//   - Clone/Reverse: copy helpers for recording and property checks.
//
// Design:
//   - No logging, no panics on user input — only the sentinel from types.go.
//   - Copy-on-write neighbors; an input tour is never mutated.
//   - Deterministic behavior: nil RNG falls back to a fixed default stream,
//     and neighbor ordering is lexicographic by swapped positions (i, j).
package tour
