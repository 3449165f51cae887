package dist_test

import (
	"testing"

	"github.com/katalvlaran/tourbench/dist"
	"github.com/stretchr/testify/require"
)

// triangle345 returns the classic 3-4-5 right triangle:
// d(0,1)=3, d(0,2)=4, d(1,2)=5.
func triangle345() []dist.Point {
	return []dist.Point{
		{X: 0, Y: 0},
		{X: 3, Y: 0},
		{X: 0, Y: 4},
	}
}

// TestEuclidean_Basics verifies the distance primitive on hand-checked pairs.
func TestEuclidean_Basics(t *testing.T) {
	// Coincident points have zero distance.
	require.Equal(t, 0.0, dist.Euclidean(dist.Point{X: 1, Y: 2}, dist.Point{X: 1, Y: 2}))

	// Axis-aligned distance equals the coordinate difference.
	require.Equal(t, 3.0, dist.Euclidean(dist.Point{X: 0, Y: 0}, dist.Point{X: 3, Y: 0}))

	// 3-4-5 right triangle hypotenuse.
	require.Equal(t, 5.0, dist.Euclidean(dist.Point{X: 3, Y: 0}, dist.Point{X: 0, Y: 4}))

	// Symmetry of the primitive itself.
	a := dist.Point{X: -1.5, Y: 2.25}
	b := dist.Point{X: 4.75, Y: -3}
	require.Equal(t, dist.Euclidean(a, b), dist.Euclidean(b, a))
}

// TestNewTable_Triangle345 checks the full table of the 3-4-5 triangle
// against its known values: [[0,3,4],[3,0,5],[4,5,0]].
func TestNewTable_Triangle345(t *testing.T) {
	tbl := dist.NewTable(triangle345())

	require.Equal(t, 3, tbl.N())

	want := [3][3]float64{
		{0, 3, 4},
		{3, 0, 5},
		{4, 5, 0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, want[i][j], tbl.At(i, j), "At(%d,%d)", i, j)
		}
	}
}

// TestNewTable_SymmetricZeroDiagonal verifies the construction invariants
// on an irregular point set.
func TestNewTable_SymmetricZeroDiagonal(t *testing.T) {
	pts := []dist.Point{
		{X: 0.1, Y: 9.7},
		{X: -4.2, Y: 3.3},
		{X: 7.77, Y: -2.5},
		{X: 1, Y: 1},
		{X: -6.25, Y: -8.8},
	}
	tbl := dist.NewTable(pts)
	require.Equal(t, len(pts), tbl.N())

	for i := 0; i < tbl.N(); i++ {
		// Exact zeros on the diagonal.
		require.Equal(t, 0.0, tbl.At(i, i), "diagonal At(%d,%d)", i, i)
		for j := i + 1; j < tbl.N(); j++ {
			// Mirrored values must be bitwise identical, not merely close.
			require.Equal(t, tbl.At(i, j), tbl.At(j, i), "symmetry At(%d,%d)", i, j)
			// Distinct points sit at strictly positive distance.
			require.Greater(t, tbl.At(i, j), 0.0)
		}
	}
}

// TestNewTable_Idempotent builds the table twice from the same coordinates
// and requires bit-for-bit identical contents (no randomness involved).
func TestNewTable_Idempotent(t *testing.T) {
	pts := []dist.Point{
		{X: 3.14, Y: 2.72},
		{X: -1.41, Y: 1.73},
		{X: 0.57, Y: -0.69},
		{X: 9.81, Y: 6.02},
	}
	a := dist.NewTable(pts)
	b := dist.NewTable(pts)

	require.Equal(t, a.N(), b.N())
	for i := 0; i < a.N(); i++ {
		for j := 0; j < a.N(); j++ {
			require.Equal(t, a.At(i, j), b.At(i, j), "At(%d,%d)", i, j)
		}
	}
	// String form is a convenient whole-table fingerprint.
	require.Equal(t, a.String(), b.String())
}

// TestTable_Clone verifies the copy carries identical contents while
// living in its own storage.
func TestTable_Clone(t *testing.T) {
	tbl := dist.NewTable(triangle345())
	cp := tbl.Clone()

	require.NotSame(t, tbl, cp)
	require.Equal(t, tbl.N(), cp.N())
	for i := 0; i < tbl.N(); i++ {
		for j := 0; j < tbl.N(); j++ {
			require.Equal(t, tbl.At(i, j), cp.At(i, j), "At(%d,%d)", i, j)
		}
	}
	require.Equal(t, tbl.String(), cp.String())
}

// TestNewTable_Degenerate covers the empty and single-city tables.
func TestNewTable_Degenerate(t *testing.T) {
	// Zero cities: empty table, not an error at this layer.
	empty := dist.NewTable(nil)
	require.Equal(t, 0, empty.N())
	require.Equal(t, "", empty.String())

	// One city: 1×1 table with a zero diagonal.
	one := dist.NewTable([]dist.Point{{X: 5, Y: 5}})
	require.Equal(t, 1, one.N())
	require.Equal(t, 0.0, one.At(0, 0))
}
