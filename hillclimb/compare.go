// Package hillclimb — run driver for averaged algorithm comparisons.
//
// Compare executes Runs independent repetitions of Climb and Runs of
// RandomSearch over the same distance table, averages the trajectories
// element-wise into one smoothed curve per engine, and retains the best
// hill-climbing tour across all runs.
//
// Concurrency model:
//   - Runs are embarrassingly parallel: each owns its tours and its own
//     derived RNG stream (deriveSeed of the base seed and the run index),
//     and writes its Result into a preallocated slot indexed by run.
//   - Fan-out goes through an errgroup with a worker limit; aggregation
//     starts strictly after the join, so no shared mutable state exists
//     while runs execute.
//   - Results are bit-identical for any Workers value and any schedule,
//     because the per-run streams depend only on (Seed, run index).
package hillclimb

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tourbench/dist"
)

// CompareOptions configures the dual-engine averaged bench.
type CompareOptions struct {
	// Runs is the number of independent repetitions per engine. Must be
	// >= 1; the driver launches 2×Runs runs in total.
	Runs int

	// Iterations, RestartThreshold, Variant, Seed and Eps configure the
	// per-run engines exactly as in Options; Seed is the base from which
	// every run derives its independent stream.
	Iterations       int
	RestartThreshold int
	Variant          Variant
	Seed             int64
	Eps              float64

	// Workers caps how many runs execute concurrently. 0 means one
	// worker per available CPU. Must be >= 0.
	Workers int

	// OnRunDone, when non-nil, fires after each completed run with the
	// count of completed runs and the total (2×Runs). Invocations are
	// serialized by the driver; the callback must return promptly and
	// must not call back into Compare.
	OnRunDone func(done, total int)
}

// DefaultCompareOptions returns the reference comparison setup:
// 10 runs × 100 iterations per engine, restart threshold 10, inner-loop
// variant, fixed default stream, strict acceptance, one worker per CPU.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{
		Runs:             DefaultRuns,
		Iterations:       DefaultCompareIterations,
		RestartThreshold: DefaultRestartThreshold,
		Variant:          InnerLoop,
		Seed:             0,
		Eps:              0,
		Workers:          0,
		OnRunDone:        nil,
	}
}

// Comparison aggregates the outcome of one Compare invocation.
type Comparison struct {
	// HillClimb and Random are the element-wise means of the per-run
	// trajectories, one point per iteration. Means of non-increasing
	// curves are non-increasing, so both inherit the monotone contract.
	HillClimb []float64
	Random    []float64

	// Best is the single best hill-climbing result across all runs
	// (ties resolved to the lowest run index).
	Best Result

	// HillClimbFinals and RandomFinals hold each run's final best length,
	// indexed by run, for summary statistics over the run population.
	HillClimbFinals []float64
	RandomFinals    []float64
}

// Compare runs the full bench. The returned Comparison is self-contained;
// per-run Results other than Best are not retained.
//
// Errors: ErrEmptyTable, ErrBadRuns, ErrBadWorkers, plus the per-run
// Options sentinels (checked upfront — no runs start on invalid input).
//
// Complexity: 2×Runs engine runs (see Climb / RandomSearch), divided
// across min(Workers, 2×Runs) goroutines, plus O(Runs×Iterations)
// aggregation.
func Compare(tbl *dist.Table, opts CompareOptions) (*Comparison, error) {
	// Stage 1 — upfront validation; engines re-check but never fire.
	if err := validateTable(tbl); err != nil {
		return nil, err
	}
	if opts.Runs < 1 {
		return nil, ErrBadRuns
	}
	if opts.Workers < 0 {
		return nil, ErrBadWorkers
	}
	runOpts := Options{
		Iterations:       opts.Iterations,
		RestartThreshold: opts.RestartThreshold,
		Variant:          opts.Variant,
		Eps:              opts.Eps,
	}
	if err := validateOptions(runOpts, true); err != nil {
		return nil, err
	}

	var workers = opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Base seed follows the engine policy: 0 maps to the default stream.
	var base = opts.Seed
	if base == 0 {
		base = defaultRNGSeed
	}

	// Stage 2 — fan out 2×Runs independent runs into preallocated slots.
	var (
		hcRuns = make([]Result, opts.Runs)
		rsRuns = make([]Result, opts.Runs)

		g     errgroup.Group
		mu    sync.Mutex // serializes completion counting + callback
		done  int
		total = 2 * opts.Runs
	)
	g.SetLimit(workers)

	finish := func() {
		if opts.OnRunDone == nil {
			return
		}
		mu.Lock()
		done++
		opts.OnRunDone(done, total)
		mu.Unlock()
	}

	var r int
	for r = 0; r < opts.Runs; r++ {
		run := r // stable copy for the two closures below

		g.Go(func() error {
			o := runOpts
			o.Seed = deriveSeed(base, uint64(run))
			res, err := Climb(tbl, o)
			if err != nil {
				return err
			}
			hcRuns[run] = res
			finish()

			return nil
		})

		g.Go(func() error {
			o := runOpts
			// Offset by Runs keeps search streams disjoint from climb streams.
			o.Seed = deriveSeed(base, uint64(opts.Runs+run))
			res, err := RandomSearch(tbl, o)
			if err != nil {
				return err
			}
			rsRuns[run] = res
			finish()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 3 — aggregate strictly after the join.
	out := &Comparison{
		HillClimb:       meanCurve(hcRuns, opts.Iterations),
		Random:          meanCurve(rsRuns, opts.Iterations),
		HillClimbFinals: finalLengths(hcRuns),
		RandomFinals:    finalLengths(rsRuns),
	}

	var bi int
	for r = 1; r < opts.Runs; r++ {
		if hcRuns[r].Length < hcRuns[bi].Length {
			bi = r
		}
	}
	out.Best = hcRuns[bi]

	return out, nil
}

// meanCurve averages trajectories element-wise across runs. All runs
// share the same iteration budget, so every column is fully populated.
//
// Complexity: O(runs×iters) time, O(runs) scratch space.
func meanCurve(runs []Result, iters int) []float64 {
	var (
		out = make([]float64, iters)
		col = make([]float64, len(runs))
		j   int
		r   int
	)
	for j = 0; j < iters; j++ {
		for r = 0; r < len(runs); r++ {
			col[r] = runs[r].Trajectory[j]
		}
		out[j] = stat.Mean(col, nil)
	}

	return out
}

// finalLengths extracts each run's final best length, indexed by run.
//
// Complexity: O(runs).
func finalLengths(runs []Result) []float64 {
	var out = make([]float64, len(runs))
	var r int
	for r = 0; r < len(runs); r++ {
		out[r] = runs[r].Length
	}

	return out
}
