// Package tour — tour construction, evaluation and copy utilities.
//
// This file contains compact, allocation-conscious helpers that operate on
// single tours:
//   - Random: unbiased random permutation via in-place Fisher–Yates.
//   - Length: cyclic route length over a distance table.
//   - Validate: permutation invariant for boundary inputs.
//   - Clone / Reverse: independent copies for bookkeeping and symmetry checks.
//
// Design:
//   - Deterministic RNG policy: nil rng ⇒ fixed default stream, so library
//     defaults stay reproducible across runs and platforms.
//   - Length performs no validation (the permutation invariant is the
//     caller's contract); it is called O(n²) times per search iteration.
//   - Costs are rounded to 1e-9 to avoid cross-platform FP noise in
//     comparisons and recorded trajectories.
package tour

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tourbench/dist"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// roundScale controls cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// Random returns a uniformly random permutation of {0..n-1}.
// Uniformity over all n! permutations is guaranteed by the Fisher–Yates
// shuffle. n ≤ 0 yields an empty tour. A nil rng selects the deterministic
// default stream.
//
// Complexity: O(n) time, O(n) space.
func Random(n int, rng *rand.Rand) Tour {
	if n <= 0 {
		return Tour{}
	}

	t := make(Tour, n)
	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}
	shuffleInPlace(t, rng)

	return t
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of t using rng.
// If rng==nil, the deterministic default stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(t Tour, rng *rand.Rand) {
	var n = len(t)
	if n <= 1 {
		return
	}

	var (
		r *rand.Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		t[i], t[j] = t[j], t[i]
	}
}

// Length returns the cyclic route length of t over tbl: the sum of the
// consecutive edges plus the wrap-around edge from the last rank back to
// the first, rounded to 1e-9.
//
// Contract:
//   - t is a valid permutation over [0..tbl.N()-1]; Length does not
//     re-validate (Validate exists for boundary inputs).
//   - Tours with fewer than two cities have no edges; Length is 0.
//
// Complexity: O(n) time, O(1) space.
func Length(t Tour, tbl *dist.Table) float64 {
	var n = len(t)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += tbl.At(t[i], t[i+1])
	}
	sum += tbl.At(t[n-1], t[0]) // closing wrap-around edge

	return round1e9(sum)
}

// Validate checks that t is a permutation of {0..n-1} of length n.
// An empty tour is valid for n == 0. It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func Validate(t Tour, n int) error {
	if n < 0 || len(t) != n {
		return ErrNotPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		// Out-of-range element violates the permutation contract.
		if v < 0 || v >= n {
			return ErrNotPermutation
		}
		// Duplicate also violates the bijection.
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// Clone returns an independent copy of t. A nil tour clones to nil.
//
// Complexity: O(n) time, O(n) space.
func Clone(t Tour) Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Reverse returns a fresh copy of t with the visiting order reversed.
// Cyclic route length is invariant under reversal on symmetric tables,
// which makes Reverse the natural probe for symmetry properties.
//
// Complexity: O(n) time, O(n) space.
func Reverse(t Tour) Tour {
	out := Clone(t)

	var i, k int
	for i, k = 0, len(out)-1; i < k; i, k = i+1, k-1 {
		out[i], out[k] = out[k], out[i]
	}

	return out
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps costs stable across platforms without affecting comparisons.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
