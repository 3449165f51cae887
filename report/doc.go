// Package report emits the bench artifacts: solution files, convergence
// curve CSVs, run-population summaries, and line-plot renderings.
//
// Provided operations:
//   - WriteTour / WriteTourFile   — best tour, one city identifier per
//     line, no header (the solution.csv format).
//   - WriteCurves / WriteCurvesFile — iteration-indexed CSV with one
//     column per named series, for external analysis.
//   - Summarize                   — mean/stddev/min/max over per-run
//     final lengths.
//   - SavePlot                    — line plot with labeled axes and a
//     legend when several series are compared; PNG via the gonum/plot
//     backend.
//
// SavePlot is the replaceable visualization collaborator: the search
// core never depends on it, and nothing here feeds back into search
// state. Writers are strict — empty inputs are reported via sentinels,
// never silently rendered as empty artifacts.
package report
