// Command tourbench runs swap-neighborhood hill climbing over a
// NODE_COORD_SECTION coordinate file and reports how it converges.
//
// Usage:
//
//	tourbench [flags] <coords-file>
//
// Two modes:
//   - compare (default): several independent hill climbs and random
//     searches over the same instance, trajectories averaged element-wise
//     into one curve per engine; the best climbed tour is written to the
//     solution file and its length printed on stdout.
//   - single: one hill climb with a larger iteration budget; same solution
//     artifact, no random baseline.
//
// stdout carries only the final result; logs and the progress bar go to
// stderr, so the output stays pipeable.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/k0kubun/go-ansi"
	"github.com/katalvlaran/tourbench/dist"
	"github.com/katalvlaran/tourbench/hillclimb"
	"github.com/katalvlaran/tourbench/report"
	"github.com/katalvlaran/tourbench/tour"
	"github.com/katalvlaran/tourbench/tsplib"
	"github.com/schollz/progressbar/v3"
)

// Bench modes.
const (
	modeCompare = "compare"
	modeSingle  = "single"
)

var (
	mode       = flag.String("mode", modeCompare, "bench mode: compare|single")
	iterations = flag.Int("iterations", 0, "iteration budget per run (0 = mode default: 100 compare, 1000 single)")
	runs       = flag.Int("runs", hillclimb.DefaultRuns, "independent repetitions per engine (compare mode)")
	restart    = flag.Int("restart", hillclimb.DefaultRestartThreshold, "consecutive non-improving iterations before a restart")
	variant    = flag.String("variant", "inner", "climb control loop: inner|outer")
	seed       = flag.Int64("seed", 0, "base RNG seed (0 = fixed default stream)")
	eps        = flag.Float64("eps", 0, "minimum improvement required to accept a neighbor")
	workers    = flag.Int("workers", 0, "concurrent runs (0 = one per CPU, compare mode)")
	solution   = flag.String("solution", "solution.csv", "best-tour output path, one city id per line")
	curves     = flag.String("curves", "", "averaged-curves CSV output path (compare mode, empty = skip)")
	plotPath   = flag.String("plot", "", "convergence chart output path, format by extension (empty = skip)")
	quiet      = flag.Bool("quiet", false, "suppress the progress bar")
	verbose    = flag.Bool("v", false, "debug-level logging")
)

func usage() {
	fmt.Fprintln(flag.CommandLine.Output(), "Usage: tourbench [flags] <coords-file>")
	fmt.Fprintln(flag.CommandLine.Output(), "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, flag.Arg(0)); err != nil {
		logger.Error("bench failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, path string) error {
	if *mode != modeCompare && *mode != modeSingle {
		return fmt.Errorf("unknown -mode %q (want %s or %s)", *mode, modeCompare, modeSingle)
	}
	v, err := parseVariant(*variant)
	if err != nil {
		return err
	}

	inst, err := tsplib.ParseFile(path)
	if err != nil {
		return err
	}
	logger.Debug("instance parsed", "path", path, "cities", inst.Len())

	tbl := dist.NewTable(inst.Points())

	if *mode == modeSingle {
		return runSingle(logger, tbl, inst.IDs(), v)
	}
	return runCompare(logger, tbl, inst.IDs(), v)
}

// runCompare reproduces the dual-engine averaged bench: Runs climbs vs
// Runs random searches, one averaged curve each, best climbed tour kept.
func runCompare(logger *slog.Logger, tbl *dist.Table, ids []int, v hillclimb.Variant) error {
	opts := hillclimb.DefaultCompareOptions()
	opts.Runs = *runs
	opts.Iterations = pickIterations(*iterations, hillclimb.DefaultCompareIterations)
	opts.RestartThreshold = *restart
	opts.Variant = v
	opts.Seed = *seed
	opts.Eps = *eps
	opts.Workers = *workers

	var bar *progressbar.ProgressBar
	if !*quiet {
		bar = newRunBar(2 * opts.Runs)
		opts.OnRunDone = func(done, _ int) { _ = bar.Set(done) }
	}

	logger.Debug("comparison configured",
		"runs", opts.Runs, "iterations", opts.Iterations,
		"restart", opts.RestartThreshold, "variant", opts.Variant.String(),
		"seed", opts.Seed, "eps", opts.Eps, "workers", opts.Workers)

	comp, err := hillclimb.Compare(tbl, opts)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}

	logSummary(logger, "hill climb", comp.HillClimbFinals)
	logSummary(logger, "random search", comp.RandomFinals)

	if err = report.WriteTourFile(*solution, rankToIDs(comp.Best.Tour, ids)); err != nil {
		return err
	}
	logger.Info("solution written", "path", *solution, "length", comp.Best.Length)

	series := []report.Series{
		{Name: "Hill Climbing Search", Values: comp.HillClimb},
		{Name: "Random Search", Values: comp.Random},
	}
	if *curves != "" {
		if err = report.WriteCurvesFile(*curves, series...); err != nil {
			return err
		}
		logger.Info("curves written", "path", *curves)
	}
	if *plotPath != "" {
		if err = report.SavePlot(*plotPath, "", "Iteration", "Fitness", series...); err != nil {
			return err
		}
		logger.Info("plot written", "path", *plotPath)
	}

	fmt.Println(comp.Best.Length)

	return nil
}

// runSingle reproduces the original single-run program: one long climb,
// solution file, optional convergence chart.
func runSingle(logger *slog.Logger, tbl *dist.Table, ids []int, v hillclimb.Variant) error {
	if *curves != "" {
		logger.Warn("-curves applies to compare mode only, skipping", "path", *curves)
	}

	opts := hillclimb.DefaultOptions()
	opts.Iterations = pickIterations(*iterations, hillclimb.DefaultIterations)
	opts.RestartThreshold = *restart
	opts.Variant = v
	opts.Seed = *seed
	opts.Eps = *eps

	logger.Debug("climb configured",
		"iterations", opts.Iterations, "restart", opts.RestartThreshold,
		"variant", opts.Variant.String(), "seed", opts.Seed, "eps", opts.Eps)

	res, err := hillclimb.Climb(tbl, opts)
	if err != nil {
		return err
	}

	if err = report.WriteTourFile(*solution, rankToIDs(res.Tour, ids)); err != nil {
		return err
	}
	logger.Info("solution written", "path", *solution, "length", res.Length)

	if *plotPath != "" {
		s := report.Series{Name: "Hill Climbing Search", Values: res.Trajectory}
		if err = report.SavePlot(*plotPath, "", "Iteration", "Best Route Length", s); err != nil {
			return err
		}
		logger.Info("plot written", "path", *plotPath)
	}

	fmt.Printf("Best route length: %v\n", res.Length)

	return nil
}

// logSummary reports the run-population aggregates of one engine's final
// best lengths.
func logSummary(logger *slog.Logger, engine string, finals []float64) {
	s, err := report.Summarize(finals)
	if err != nil {
		logger.Warn("summary unavailable", "engine", engine, "error", err)
		return
	}
	logger.Info("finals", "engine", engine,
		"mean", s.Mean, "stddev", s.StdDev, "min", s.Min, "max", s.Max)
}

// newRunBar builds the stderr progress bar spanning all engine runs.
func newRunBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]bench[reset] running..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// parseVariant maps the -variant flag onto the engine's Variant values.
func parseVariant(s string) (hillclimb.Variant, error) {
	switch s {
	case hillclimb.InnerLoop.String():
		return hillclimb.InnerLoop, nil
	case hillclimb.OuterLoop.String():
		return hillclimb.OuterLoop, nil
	default:
		return 0, fmt.Errorf("unknown -variant %q (want inner or outer)", s)
	}
}

// pickIterations resolves the -iterations flag against the mode default.
func pickIterations(flagVal, modeDefault int) int {
	if flagVal == 0 {
		return modeDefault
	}
	return flagVal
}

// rankToIDs translates a tour over 0-based ranks into the instance's own
// city identifiers, the labeling the solution artifact uses.
func rankToIDs(t tour.Tour, ids []int) []int {
	out := make([]int, len(t))
	for i, rank := range t {
		out[i] = ids[rank]
	}
	return out
}
