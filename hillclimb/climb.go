// Package hillclimb — hill climbing with random restart.
//
// The engine is a steepest-ascent (best-improvement) climb over the
// pairwise-swap neighborhood: every iteration evaluates the complete
// neighborhood of the current tour and adopts the strictly best
// improving neighbor, never the first one found. A stagnation counter
// tracks consecutive iterations without an accepted move; crossing the
// restart threshold abandons the current trajectory for a fresh random
// tour while the best-found solution is preserved separately.
//
// Two control-loop shapes are exposed (see Variant):
//   - InnerLoop (canonical): one adoption decision per iteration, with
//     per-iteration order: explore → adopt-or-stagnate → best
//     bookkeeping → restart check → trajectory append. The restart
//     check runs after bookkeeping so a restart can never discard the
//     local optimum it escapes from.
//   - OuterLoop: each iteration restarts fresh and runs the full descent
//     to a local optimum before reporting. Every outer iteration is a
//     restart by construction, so no stagnation tracking exists in this
//     shape and RestartThreshold is ignored.
//
// Contracts:
//   - No logging, no panics on user input — only sentinels from types.go.
//   - Degenerate instances are legal: a single-city table has an empty
//     neighborhood, which simply counts as permanent stagnation.
//
// Complexity: O(Iterations·n³) worst case for InnerLoop (n(n-1)/2
// neighbors, O(n) evaluation each); OuterLoop multiplies by the descent
// depth. Accepted for the few-hundred-city experimentation scale.
package hillclimb

import (
	"math"

	"github.com/katalvlaran/tourbench/dist"
	"github.com/katalvlaran/tourbench/tour"
)

// Climb runs hill climbing with random restart over tbl and returns the
// best tour found, its length, and the per-iteration best-so-far
// trajectory.
//
// Contracts:
//   - tbl non-nil with at least one city (ErrEmptyTable otherwise).
//   - opts validated per validateOptions (ErrBadIterations,
//     ErrBadRestartThreshold, ErrBadEps, ErrBadVariant).
//   - Deterministic: the outcome is a pure function of (tbl, opts).
func Climb(tbl *dist.Table, opts Options) (Result, error) {
	// Stage 1 — validation (strict sentinels, no partial results).
	if err := validateTable(tbl); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts, true); err != nil {
		return Result{}, err
	}

	// Stage 2 — dispatch by control-loop shape.
	if opts.Variant == OuterLoop {
		return climbOuter(tbl, opts), nil
	}

	return climbInner(tbl, opts), nil
}

// climbInner is the canonical persistent-current loop: one swap-adoption
// decision per iteration, stagnation tracked across iterations.
func climbInner(tbl *dist.Table, opts Options) Result {
	var (
		n   = tbl.N()
		rng = rngFromSeed(opts.Seed)

		current = tour.Random(n, rng)       // working solution
		curLen  = tour.Length(current, tbl) // its cached length
		best    tour.Tour                   // best tour across the run
		bestLen = math.Inf(1)               // best length across the run
		traj    = make([]float64, 0, opts.Iterations)

		stagnation int // consecutive iterations without an accepted move
		it         int
	)

	for it = 0; it < opts.Iterations; it++ {
		// Explore: full swap neighborhood, steepest descent choice.
		nb, nbLen, ok := bestNeighbor(tour.Neighbors(current), tbl)
		if ok && nbLen < curLen-opts.Eps {
			// Improve: adopt the best neighbor, reset stagnation.
			current, curLen = nb, nbLen
			stagnation = 0
		} else {
			// Stagnate: local optimum relative to the swap neighborhood.
			// An empty neighborhood (n ≤ 1) lands here every iteration.
			stagnation++
		}

		// Best bookkeeping precedes the restart decision: a restart must
		// not discard the solution it escapes from.
		if curLen < bestLen {
			best, bestLen = tour.Clone(current), curLen
		}

		// Restart: abandon the trajectory after sustained stagnation.
		if stagnation >= opts.RestartThreshold {
			current = tour.Random(n, rng)
			curLen = tour.Length(current, tbl)
			stagnation = 0
		}

		traj = append(traj, bestLen)
	}

	return Result{Tour: best, Length: bestLen, Trajectory: traj}
}

// climbOuter restarts every iteration: a fresh random tour is fully
// descended to its local optimum, then reported as one trajectory point.
func climbOuter(tbl *dist.Table, opts Options) Result {
	var (
		n   = tbl.N()
		rng = rngFromSeed(opts.Seed)

		best    tour.Tour
		bestLen = math.Inf(1)
		traj    = make([]float64, 0, opts.Iterations)

		current tour.Tour
		curLen  float64
		it      int
	)

	for it = 0; it < opts.Iterations; it++ {
		// Fresh start; the previous iteration's trajectory is discarded.
		current = tour.Random(n, rng)
		curLen = tour.Length(current, tbl)

		// Full steepest descent to the local optimum of this start.
		for {
			nb, nbLen, ok := bestNeighbor(tour.Neighbors(current), tbl)
			if !ok || nbLen >= curLen-opts.Eps {
				break
			}
			current, curLen = nb, nbLen
		}

		if curLen < bestLen {
			best, bestLen = tour.Clone(current), curLen
		}

		traj = append(traj, bestLen)
	}

	return Result{Tour: best, Length: bestLen, Trajectory: traj}
}

// bestNeighbor scans nbs in neighborhood order and returns the first
// strictly minimal neighbor with its length; ties keep the earliest
// candidate, which makes the choice deterministic. ok is false for an
// empty neighborhood.
//
// Complexity: O(len(nbs)·n) time — one full length evaluation per
// neighbor — and O(1) extra space.
func bestNeighbor(nbs []tour.Tour, tbl *dist.Table) (tour.Tour, float64, bool) {
	if len(nbs) == 0 {
		return nil, 0, false
	}

	var (
		best    = nbs[0]
		bestLen = tour.Length(best, tbl)
		k       int
		l       float64
	)
	for k = 1; k < len(nbs); k++ {
		l = tour.Length(nbs[k], tbl)
		if l < bestLen {
			best, bestLen = nbs[k], l
		}
	}

	return best, bestLen, true
}
