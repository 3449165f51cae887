package report

import "errors"

// ErrNoSeries is returned when a curve operation receives zero series.
var ErrNoSeries = errors.New("report: no series provided")

// ErrEmptyData is returned when an artifact would be rendered from empty
// data (an empty tour, an empty series, an empty sample).
var ErrEmptyData = errors.New("report: empty data")

// ErrSeriesLength is returned when curve series that must align
// point-for-point have different lengths.
var ErrSeriesLength = errors.New("report: series lengths differ")

// Series is one named convergence curve: Values[i] is the metric after
// iteration i.
type Series struct {
	Name   string
	Values []float64
}
