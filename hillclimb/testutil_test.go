// Package hillclimb_test provides lightweight helpers shared across the
// *_test.go files in this package. The helpers are intentionally minimal
// and deterministic; anything RNG-based takes an explicit seed.
package hillclimb_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourbench/dist"
)

// Constants — single source of truth for test knobs.
const (
	// seedDet is the fixed deterministic seed used across the suite.
	seedDet int64 = 42

	// squareOptimum is the unit-square optimum: the perimeter 4.0.
	squareOptimum = 4.0

	// convergeIters/convergeThreshold size the unit-square convergence
	// checks per the acceptance scenario (≤50 iterations, threshold 5).
	convergeIters     = 50
	convergeThreshold = 5
)

// unitSquare returns the canonical 4-city instance whose optimal tour is
// the square perimeter of length 4.0.
func unitSquare() *dist.Table {
	return dist.NewTable([]dist.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
	})
}

// randomCloud builds an n-city table from uniform points in [0,100)²,
// deterministically from seed.
func randomCloud(n int, seed int64) *dist.Table {
	var rng = rand.New(rand.NewSource(seed))
	var pts = make([]dist.Point, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i] = dist.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}

	return dist.NewTable(pts)
}

// requireNonIncreasing fails the test at the first trajectory point that
// exceeds its predecessor (beyond exact FP equality — trajectories carry
// stabilized values, so strict comparison is safe).
func requireNonIncreasing(t *testing.T, traj []float64) {
	t.Helper()
	var i int
	for i = 1; i < len(traj); i++ {
		if traj[i] > traj[i-1] {
			t.Fatalf("trajectory increases at %d: %v -> %v", i, traj[i-1], traj[i])
		}
	}
}

// requireFinite fails the test if any trajectory point is NaN or ±Inf;
// every point must be a realized best length once the first iteration ran.
func requireFinite(t *testing.T, traj []float64) {
	t.Helper()
	var i int
	for i = 0; i < len(traj); i++ {
		if math.IsNaN(traj[i]) || math.IsInf(traj[i], 0) {
			t.Fatalf("non-finite trajectory point at %d: %v", i, traj[i])
		}
	}
}
