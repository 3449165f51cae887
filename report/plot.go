// Package report — convergence-plot rendering.
//
// SavePlot is a thin adapter over gonum/plot: each series becomes one
// line (plotutil assigns distinct colors and dashes), axes carry the
// given labels, and a legend appears only when two or more series are
// compared. The output format follows the path extension; the bench
// writes PNG.
package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Canvas dimensions for saved plots.
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// SavePlot renders series as iteration-indexed lines and saves the chart
// to path. Series may have different lengths (each line spans its own
// iteration range); empty series are rejected.
//
// Errors: ErrNoSeries, ErrEmptyData, plus wrapped renderer/save failures.
//
// Complexity: O(total points) plus rendering.
func SavePlot(path, title, xlabel, ylabel string, series ...Series) error {
	// Stage 1 — validation.
	if len(series) == 0 {
		return ErrNoSeries
	}
	var s Series
	for _, s = range series {
		if len(s.Values) == 0 {
			return fmt.Errorf("report: series %q: %w", s.Name, ErrEmptyData)
		}
	}

	// Stage 2 — assemble the chart.
	var p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend.Top = true

	// plotutil pairs an optional name with the following XYer; named
	// lines get legend entries, so names are passed only for multi-series
	// charts.
	var (
		withLegend = len(series) > 1
		args       = make([]interface{}, 0, 2*len(series))
		i          int
		v          float64
	)
	for _, s = range series {
		var pts = make(plotter.XYs, len(s.Values))
		for i, v = range s.Values {
			pts[i].X = float64(i)
			pts[i].Y = v
		}
		if withLegend {
			args = append(args, s.Name)
		}
		args = append(args, pts)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return fmt.Errorf("report: add lines: %w", err)
	}

	// Stage 3 — render to disk.
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("report: save plot %s: %w", path, err)
	}

	return nil
}
