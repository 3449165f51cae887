package hillclimb

import (
	"errors"

	"github.com/katalvlaran/tourbench/dist"
	"github.com/katalvlaran/tourbench/tour"
)

// ErrEmptyTable is returned when the distance table is nil or covers zero
// cities; no meaningful tour exists on such an instance.
var ErrEmptyTable = errors.New("hillclimb: nil or empty distance table")

// ErrBadIterations is returned when the iteration budget is not positive.
var ErrBadIterations = errors.New("hillclimb: iterations must be >= 1")

// ErrBadRestartThreshold is returned when the stagnation threshold is not
// positive. A threshold of k restarts the climb after k consecutive
// iterations without an accepted improving move.
var ErrBadRestartThreshold = errors.New("hillclimb: restart threshold must be >= 1")

// ErrBadEps is returned for a negative acceptance tolerance, which would
// invert the improvement rule.
var ErrBadEps = errors.New("hillclimb: eps must be >= 0")

// ErrBadVariant is returned for a Variant value outside the declared set.
var ErrBadVariant = errors.New("hillclimb: unknown control-loop variant")

// ErrBadRuns is returned when Compare is asked for a non-positive number
// of repetitions.
var ErrBadRuns = errors.New("hillclimb: runs must be >= 1")

// ErrBadWorkers is returned for a negative worker cap (0 means one worker
// per available CPU).
var ErrBadWorkers = errors.New("hillclimb: workers must be >= 0")

// Default knobs shared by the engines and the run driver. The values
// mirror the reference experiment setup: a long single run for studying
// one trajectory, shorter repeated runs for averaged comparisons.
const (
	// DefaultIterations is the single-run iteration budget.
	DefaultIterations = 1000

	// DefaultCompareIterations is the per-run budget when many runs are
	// averaged by Compare; shorter, since the mean curve smooths noise.
	DefaultCompareIterations = 100

	// DefaultRestartThreshold is the stagnation count that triggers a
	// random restart in the InnerLoop variant.
	DefaultRestartThreshold = 10

	// DefaultRuns is the number of independent repetitions per engine
	// in Compare.
	DefaultRuns = 10
)

// Variant selects the control-loop shape of Climb. Both shapes report one
// trajectory point per iteration, but an iteration means different work.
type Variant int

const (
	// InnerLoop evolves a single persistent current tour: one
	// swap-adoption decision per iteration, stagnation tracked across
	// iterations, restart once it crosses Options.RestartThreshold.
	// This is the canonical default; its trajectory exposes the climb
	// step by step.
	InnerLoop Variant = iota

	// OuterLoop draws a fresh random tour every iteration and fully
	// descends to a local optimum before reporting. Every iteration is a
	// restart by construction, so RestartThreshold is ignored; each
	// trajectory point collapses a whole climb into one value.
	OuterLoop
)

// String implements fmt.Stringer for diagnostics and CLI output.
func (v Variant) String() string {
	switch v {
	case InnerLoop:
		return "inner"
	case OuterLoop:
		return "outer"
	default:
		return "unknown"
	}
}

// Options configures a single engine run.
//
// RandomSearch reads only Iterations and Seed; RestartThreshold, Variant
// and Eps govern Climb. Zero values are NOT all valid — construct from
// DefaultOptions and override.
type Options struct {
	// Iterations is the fixed iteration budget; each iteration appends
	// exactly one point to the trajectory. Must be >= 1.
	Iterations int

	// RestartThreshold is the number of consecutive non-improving
	// iterations after which the InnerLoop climb restarts from a fresh
	// random tour. Must be >= 1. Ignored by OuterLoop and RandomSearch.
	RestartThreshold int

	// Variant selects the Climb control-loop shape. InnerLoop is the
	// canonical default.
	Variant Variant

	// Seed selects the deterministic RNG stream. Seed 0 maps to a fixed
	// default stream; wall-clock seeding is never used.
	Seed int64

	// Eps is the acceptance tolerance: a neighbor is adopted only when
	// it is shorter than the current tour by more than Eps. Must be
	// >= 0; 0 keeps the strict less-than rule.
	Eps float64
}

// DefaultOptions returns the reference single-run configuration:
// 1000 iterations, restart threshold 10, inner-loop variant, fixed
// default stream, strict acceptance.
func DefaultOptions() Options {
	return Options{
		Iterations:       DefaultIterations,
		RestartThreshold: DefaultRestartThreshold,
		Variant:          InnerLoop,
		Seed:             0,
		Eps:              0,
	}
}

// Result is the outcome of one engine run.
type Result struct {
	// Tour is the best tour found across the whole run, as 0-based city
	// ranks. It is an independent copy, never aliased by engine state.
	Tour tour.Tour

	// Length is Tour's cyclic route length over the run's table.
	Length float64

	// Trajectory holds the best-so-far length after each iteration.
	// len(Trajectory) == Options.Iterations and values never increase.
	Trajectory []float64
}

// validateTable rejects nil or zero-city distance tables.
//
// Complexity: O(1).
func validateTable(tbl *dist.Table) error {
	if tbl == nil || tbl.N() == 0 {
		return ErrEmptyTable
	}

	return nil
}

// validateOptions checks an option set for internal consistency.
// RandomSearch ignores RestartThreshold, Variant and Eps, so those checks
// apply only when climbing (climb == true).
//
// Complexity: O(1).
func validateOptions(opts Options, climb bool) error {
	if opts.Iterations < 1 {
		return ErrBadIterations
	}
	if !climb {
		return nil
	}
	if opts.RestartThreshold < 1 {
		return ErrBadRestartThreshold
	}
	if opts.Eps < 0 {
		return ErrBadEps
	}
	switch opts.Variant {
	case InnerLoop, OuterLoop:
	default:
		return ErrBadVariant
	}

	return nil
}
