// Package dist — dense symmetric distance table.
//
// Table stores all pairwise distances in a flat row-major slice for
// cache-friendly reads inside search loops. It is built once from a
// coordinate list and never mutated afterwards.
//
// Design:
//   - Only the upper triangle is computed; values are mirrored below.
//   - The diagonal stays exactly zero (no self-loop cost).
//   - At performs no bounds checks: lookups sit on the hottest path of
//     every local-search step, and index validity is the caller's
//     contract (indices originate from validated permutations).
package dist

import "fmt"

// Table is a symmetric n×n matrix of pairwise distances.
// data holds n*n elements in row-major order.
type Table struct {
	n    int       // number of cities
	data []float64 // flat backing storage, length == n*n
}

// NewTable computes the full pairwise Euclidean distance table for points.
// An empty coordinate list yields an empty table (N()==0); rejecting
// degenerate instances is the caller's concern, not this layer's.
//
// Stage 1 (Prepare): allocate zeroed flat backing slice.
// Stage 2 (Execute): fill the upper triangle, mirror to the lower.
// Stage 3 (Finalize): return the table.
//
// Complexity: O(n²) time and memory, n(n-1)/2 distance evaluations.
func NewTable(points []Point) *Table {
	// Allocate backing storage; make() zeroes it, which covers the diagonal.
	var n = len(points)
	var data = make([]float64, n*n)

	var (
		i, j int     // upper-triangle indices
		d    float64 // pairwise distance
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Euclidean(points[i], points[j])
			data[i*n+j] = d // upper triangle
			data[j*n+i] = d // mirrored lower triangle
		}
	}

	return &Table{n: n, data: data}
}

// N returns the number of cities covered by the table.
// Complexity: O(1).
func (t *Table) N() int {
	return t.n // return stored dimension
}

// At returns the distance between city ranks i and j.
//
// Contract: 0 ≤ i,j < N(). Indices outside that range panic via the
// runtime bounds check; callers obtain indices from valid permutations,
// so no per-lookup validation is spent here.
//
// Complexity: O(1).
func (t *Table) At(i, j int) float64 {
	return t.data[i*t.n+j]
}

// Clone returns an independent deep copy of the table.
// Complexity: O(n²) for the data copy.
func (t *Table) Clone() *Table {
	cp := make([]float64, len(t.data)) // allocate same length
	copy(cp, t.data)                   // deep copy values

	return &Table{n: t.n, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (t *Table) String() string {
	var s string
	var i, j int
	for i = 0; i < t.n; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < t.n; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", t.data[i*t.n+j])
			if j < t.n-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
