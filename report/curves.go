// Package report — convergence-curve CSV writer.
//
// The export format is one row per iteration: an `iteration` index
// column followed by one column per named series. Series must align
// point-for-point; the writer rejects ragged input instead of padding.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCurves writes series to w as an iteration-indexed CSV. Column
// order follows argument order; the header carries the series names.
// Values are rendered with strconv 'g' formatting at full precision, so
// reading the CSV back reproduces the float64 values exactly.
//
// Errors: ErrNoSeries, ErrEmptyData (zero-length series), ErrSeriesLength
// (wrapped with the offending series names).
//
// Complexity: O(points×series).
func WriteCurves(w io.Writer, series ...Series) error {
	// Stage 1 — structural validation before any byte is written.
	if len(series) == 0 {
		return ErrNoSeries
	}
	var n = len(series[0].Values)
	if n == 0 {
		return ErrEmptyData
	}
	var s Series
	for _, s = range series[1:] {
		if len(s.Values) != n {
			return fmt.Errorf("report: %q has %d points, %q has %d: %w",
				series[0].Name, n, s.Name, len(s.Values), ErrSeriesLength)
		}
	}

	// Stage 2 — header plus one row per iteration.
	var cw = csv.NewWriter(w)

	var header = make([]string, 0, len(series)+1)
	header = append(header, "iteration")
	for _, s = range series {
		header = append(header, s.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: write curves header: %w", err)
	}

	var (
		row = make([]string, len(series)+1)
		i   int
		k   int
	)
	for i = 0; i < n; i++ {
		row[0] = strconv.Itoa(i)
		for k = 0; k < len(series); k++ {
			row[k+1] = strconv.FormatFloat(series[k].Values[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: write curves row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush curves: %w", err)
	}

	return nil
}

// WriteCurvesFile writes series to a fresh file at path via WriteCurves.
// An existing file is truncated.
func WriteCurvesFile(path string, series ...Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}

	if err = WriteCurves(f, series...); err != nil {
		_ = f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}

	return nil
}
