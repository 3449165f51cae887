// Package tour — pairwise-swap neighborhood generation.
//
// The neighborhood of a tour is the set of all tours obtained by swapping
// exactly one unordered pair of positions. Swaps connect the whole search
// graph (any permutation is reachable from any other by a swap sequence),
// which is what makes restart-based hill climbing sound on top of them.
//
// Contracts:
//   - The input tour is never mutated; every neighbor is an independent copy.
//   - Ordering is deterministic: lexicographic by swapped positions (i, j).
package tour

// NeighborCount returns the size of the swap neighborhood for n cities:
// n(n-1)/2 unordered position pairs. n < 2 has no neighbors.
//
// Complexity: O(1).
func NeighborCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Neighbors returns all single-transposition variants of t as independent
// copies, ordered lexicographically by the swapped position pair (i, j).
// Tours with fewer than two cities have an empty neighborhood.
//
// Complexity: O(n³) time and space — n(n-1)/2 neighbors of n ranks each.
// The quadratic neighborhood is the accepted cost of the swap operator;
// this generator is not meant for instances beyond a few hundred cities.
func Neighbors(t Tour) []Tour {
	var n = len(t)
	if n < 2 {
		return nil
	}

	out := make([]Tour, 0, NeighborCount(n))

	var (
		i, j int  // swapped position pair, i < j
		nb   Tour // copy under construction
	)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			nb = Clone(t)
			nb[i], nb[j] = nb[j], nb[i]
			out = append(out, nb)
		}
	}

	return out
}
