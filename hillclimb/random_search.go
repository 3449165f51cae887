// Package hillclimb — random-search baseline.
//
// RandomSearch is the comparison control for Climb: it carries no state
// between iterations beyond the running best, so any advantage the climb
// shows over it is attributable to the neighborhood structure rather
// than to the iteration budget.
package hillclimb

import (
	"math"

	"github.com/katalvlaran/tourbench/dist"
	"github.com/katalvlaran/tourbench/tour"
)

// RandomSearch samples one independent uniform random tour per iteration
// and tracks the best seen. The trajectory follows the same contract as
// Climb's (best-so-far per iteration, non-increasing, len == Iterations)
// so the two curves compare point for point.
//
// Options: only Iterations and Seed are read; RestartThreshold, Variant
// and Eps are ignored.
//
// Complexity: O(Iterations·n) time, O(n) space beyond the trajectory.
func RandomSearch(tbl *dist.Table, opts Options) (Result, error) {
	// Stage 1 — validation.
	if err := validateTable(tbl); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts, false); err != nil {
		return Result{}, err
	}

	// Stage 2 — independent draws, running best.
	var (
		n   = tbl.N()
		rng = rngFromSeed(opts.Seed)

		best    tour.Tour
		bestLen = math.Inf(1)
		traj    = make([]float64, 0, opts.Iterations)

		cand tour.Tour
		l    float64
		it   int
	)

	for it = 0; it < opts.Iterations; it++ {
		cand = tour.Random(n, rng)
		l = tour.Length(cand, tbl)
		if l < bestLen {
			// cand is a fresh allocation each draw; no clone needed.
			best, bestLen = cand, l
		}
		traj = append(traj, bestLen)
	}

	return Result{Tour: best, Length: bestLen, Trajectory: traj}, nil
}
