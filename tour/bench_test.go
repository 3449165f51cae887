// Package tour_test — benchmarks for the hot primitives of local search:
// route-length evaluation and swap-neighborhood generation.
//
// Policy:
//   - Deterministic geometry and fixed seeds; no flaky inputs.
//   - Inputs built outside the timer; only the measured core inside.
package tour_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourbench/dist"
	"github.com/katalvlaran/tourbench/tour"
)

// benchTable builds an n-point rippled-circle distance table.
func benchTable(n int) *dist.Table {
	var pts = make([]dist.Point, n) // coordinate buffer
	var i int                       // loop iterator
	var th float64                  // angle
	var r float64                   // radius with ripple
	for i = 0; i < n; i++ {         // fill coordinates
		th = 2.0 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.015*float64((i*7)%11)
		pts[i] = dist.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return dist.NewTable(pts)
}

// BenchmarkLength_n512 measures cyclic evaluation on a 512-city tour.
func BenchmarkLength_n512(b *testing.B) {
	// Build table and a fixed random tour outside the timer.
	var tbl = benchTable(512)
	var tr = tour.Random(512, rand.New(rand.NewSource(seedDet)))

	b.ReportAllocs() // allocation stats
	b.ResetTimer()   // reset timer

	var it int                   // iteration counter
	var sum float64              // accumulator against dead-code elimination
	for it = 0; it < b.N; it++ { // repeat per the harness
		sum += tour.Length(tr, tbl)
	}
	_ = sum
}

// BenchmarkNeighbors_n100 measures generating all C(100,2)=4950 neighbors.
func BenchmarkNeighbors_n100(b *testing.B) {
	// Fixed tour built outside the timer.
	var tr = tour.Random(100, rand.New(rand.NewSource(seedDet)))

	b.ReportAllocs()
	b.ResetTimer()

	var it int                   // iteration counter
	for it = 0; it < b.N; it++ { // repeat
		var nbs = tour.Neighbors(tr) // measured generation
		if len(nbs) != 4950 {        // the full neighborhood is expected
			b.Fatalf("unexpected neighborhood size: %d", len(nbs))
		}
	}
}
