package hillclimb_test

import (
	"testing"

	"github.com/katalvlaran/tourbench/dist"
	"github.com/katalvlaran/tourbench/hillclimb"
	"github.com/katalvlaran/tourbench/tour"
	"github.com/stretchr/testify/require"
)

// TestClimb_UnitSquareConverges runs the acceptance scenario for both
// control-loop variants: from any seeded start on the unit square, the
// climb must reach the optimal perimeter 4.0 within 50 iterations at
// restart threshold 5. On four cities any crossing tour has the
// perimeter among its swap neighbors, so steepest descent cannot miss it.
func TestClimb_UnitSquareConverges(t *testing.T) {
	tbl := unitSquare()

	for _, variant := range []hillclimb.Variant{hillclimb.InnerLoop, hillclimb.OuterLoop} {
		for seed := int64(0); seed < 8; seed++ {
			opts := hillclimb.DefaultOptions()
			opts.Iterations = convergeIters
			opts.RestartThreshold = convergeThreshold
			opts.Variant = variant
			opts.Seed = seed

			res, err := hillclimb.Climb(tbl, opts)
			require.NoError(t, err, "variant=%v seed=%d", variant, seed)
			require.InDelta(t, squareOptimum, res.Length, 1e-9, "variant=%v seed=%d", variant, seed)
			require.NoError(t, tour.Validate(res.Tour, tbl.N()), "variant=%v seed=%d", variant, seed)
			require.InDelta(t, res.Length, tour.Length(res.Tour, tbl), 1e-9, "length must match its tour")
		}
	}
}

// TestClimb_TrajectoryContract checks, over an irregular 12-city cloud,
// the three trajectory guarantees: exact budget length, monotone
// non-increase, and the final point equaling the reported best length.
func TestClimb_TrajectoryContract(t *testing.T) {
	tbl := randomCloud(12, seedDet)

	for _, variant := range []hillclimb.Variant{hillclimb.InnerLoop, hillclimb.OuterLoop} {
		opts := hillclimb.DefaultOptions()
		opts.Iterations = 60
		opts.RestartThreshold = 7
		opts.Variant = variant
		opts.Seed = seedDet

		res, err := hillclimb.Climb(tbl, opts)
		require.NoError(t, err)
		require.Len(t, res.Trajectory, opts.Iterations, "variant=%v", variant)
		requireNonIncreasing(t, res.Trajectory)
		requireFinite(t, res.Trajectory)
		require.Equal(t, res.Length, res.Trajectory[len(res.Trajectory)-1],
			"last trajectory point must be the final best")
	}
}

// TestClimb_Deterministic requires identical Results for identical seeds,
// and the seed-0 policy to match the fixed default stream on every call.
func TestClimb_Deterministic(t *testing.T) {
	tbl := randomCloud(10, seedDet)

	opts := hillclimb.DefaultOptions()
	opts.Iterations = 40
	opts.Seed = 7

	a, err := hillclimb.Climb(tbl, opts)
	require.NoError(t, err)
	b, err := hillclimb.Climb(tbl, opts)
	require.NoError(t, err)
	require.Equal(t, a, b, "same seed must reproduce the full Result")

	opts.Seed = 0
	z1, err := hillclimb.Climb(tbl, opts)
	require.NoError(t, err)
	z2, err := hillclimb.Climb(tbl, opts)
	require.NoError(t, err)
	require.Equal(t, z1, z2, "seed 0 must select a fixed stream, not wall clock")
}

// TestClimb_DistinctSeedsDiverge guards the per-seed independence: two
// different seeds on a non-trivial instance should not trace identical
// trajectories (they could in principle, but not on this fixed pair —
// a regression here means seeding is being ignored).
func TestClimb_DistinctSeedsDiverge(t *testing.T) {
	tbl := randomCloud(14, seedDet)

	opts := hillclimb.DefaultOptions()
	opts.Iterations = 30

	opts.Seed = 1
	a, err := hillclimb.Climb(tbl, opts)
	require.NoError(t, err)

	opts.Seed = 2
	b, err := hillclimb.Climb(tbl, opts)
	require.NoError(t, err)

	require.NotEqual(t, a.Trajectory, b.Trajectory, "distinct seeds must yield distinct searches")
}

// TestClimb_SingleCity pins the degenerate instance: no edges, no
// neighbors, permanent stagnation — and still a well-formed Result.
func TestClimb_SingleCity(t *testing.T) {
	tbl := dist.NewTable([]dist.Point{{X: 3, Y: 4}})

	opts := hillclimb.DefaultOptions()
	opts.Iterations = 20
	opts.RestartThreshold = 3

	res, err := hillclimb.Climb(tbl, opts)
	require.NoError(t, err)
	require.Equal(t, tour.Tour{0}, res.Tour)
	require.Equal(t, 0.0, res.Length)
	require.Len(t, res.Trajectory, 20)
	for i, v := range res.Trajectory {
		require.Equal(t, 0.0, v, "trajectory[%d]", i)
	}
}

// TestClimb_TwoCities covers the smallest instance with a non-empty
// neighborhood: both cyclic orders cost the same, so the first tour is
// already optimal and every iteration stagnates.
func TestClimb_TwoCities(t *testing.T) {
	tbl := dist.NewTable([]dist.Point{{X: 0, Y: 0}, {X: 5, Y: 0}})

	opts := hillclimb.DefaultOptions()
	opts.Iterations = 10
	opts.RestartThreshold = 2

	res, err := hillclimb.Climb(tbl, opts)
	require.NoError(t, err)
	require.Equal(t, 10.0, res.Length, "out-and-back over one edge")
	require.NoError(t, tour.Validate(res.Tour, 2))
}

// TestClimb_Validation exercises every input sentinel.
func TestClimb_Validation(t *testing.T) {
	tbl := unitSquare()

	_, err := hillclimb.Climb(nil, hillclimb.DefaultOptions())
	require.ErrorIs(t, err, hillclimb.ErrEmptyTable)

	_, err = hillclimb.Climb(dist.NewTable(nil), hillclimb.DefaultOptions())
	require.ErrorIs(t, err, hillclimb.ErrEmptyTable)

	opts := hillclimb.DefaultOptions()
	opts.Iterations = 0
	_, err = hillclimb.Climb(tbl, opts)
	require.ErrorIs(t, err, hillclimb.ErrBadIterations)

	opts = hillclimb.DefaultOptions()
	opts.RestartThreshold = 0
	_, err = hillclimb.Climb(tbl, opts)
	require.ErrorIs(t, err, hillclimb.ErrBadRestartThreshold)

	opts = hillclimb.DefaultOptions()
	opts.Eps = -0.5
	_, err = hillclimb.Climb(tbl, opts)
	require.ErrorIs(t, err, hillclimb.ErrBadEps)

	opts = hillclimb.DefaultOptions()
	opts.Variant = hillclimb.Variant(99)
	_, err = hillclimb.Climb(tbl, opts)
	require.ErrorIs(t, err, hillclimb.ErrBadVariant)
}

// TestClimb_EpsTolerance verifies that a huge tolerance freezes the climb
// (no neighbor improves by more than Eps), turning every iteration into
// stagnation and restarts — the best is then the best of random starts,
// still a valid, monotone run.
func TestClimb_EpsTolerance(t *testing.T) {
	tbl := randomCloud(8, seedDet)

	opts := hillclimb.DefaultOptions()
	opts.Iterations = 25
	opts.RestartThreshold = 5
	opts.Eps = 1e12 // beyond any possible improvement on this instance

	res, err := hillclimb.Climb(tbl, opts)
	require.NoError(t, err)
	require.Len(t, res.Trajectory, 25)
	requireNonIncreasing(t, res.Trajectory)
	require.NoError(t, tour.Validate(res.Tour, tbl.N()))
}

// TestClimb_VariantString pins the Stringer used by diagnostics.
func TestClimb_VariantString(t *testing.T) {
	require.Equal(t, "inner", hillclimb.InnerLoop.String())
	require.Equal(t, "outer", hillclimb.OuterLoop.String())
	require.Equal(t, "unknown", hillclimb.Variant(99).String())
}
