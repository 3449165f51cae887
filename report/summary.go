// Package report — run-population summaries.
//
// Compare produces one final best length per run; Summarize condenses
// that sample into the four numbers a bench report needs. Population
// (not sample) standard deviation is used: the runs ARE the population
// under study, not a sample from a larger one.
package report

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary aggregates a set of per-run final route lengths.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the Summary of xs. An empty sample yields
// ErrEmptyData; the stats backend cannot fail on non-empty input.
//
// Complexity: O(n).
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmptyData
	}

	mean, err := stats.Mean(xs)
	if err != nil {
		return Summary{}, fmt.Errorf("report: mean: %w", err)
	}
	sd, err := stats.StandardDeviation(xs)
	if err != nil {
		return Summary{}, fmt.Errorf("report: stddev: %w", err)
	}
	lo, err := stats.Min(xs)
	if err != nil {
		return Summary{}, fmt.Errorf("report: min: %w", err)
	}
	hi, err := stats.Max(xs)
	if err != nil {
		return Summary{}, fmt.Errorf("report: max: %w", err)
	}

	return Summary{Mean: mean, StdDev: sd, Min: lo, Max: hi}, nil
}
