// Package hillclimb drives local-search experiments over symmetric TSP
// instances: steepest-ascent hill climbing with random restarts, a
// random-search baseline, and a run driver that averages convergence
// curves across independent repetitions.
//
// Engines:
//
//   - Climb        — hill climbing over the pairwise-swap neighborhood.
//     Each iteration explores the complete neighborhood of the current
//     tour and adopts the best strictly-improving neighbor; sustained
//     stagnation triggers a restart from a fresh random tour. Two
//     control-loop shapes are exposed via Options.Variant (see Variant).
//   - RandomSearch — the comparison control: independent random tours,
//     best-so-far tracking, same trajectory contract as Climb.
//   - Compare      — 2×Runs independent repetitions of both engines over
//     one instance, element-wise mean curves, best tour retained.
//
// Contracts shared by all engines:
//   - The trajectory holds the best-so-far length after every iteration;
//     it never increases and its length equals Options.Iterations.
//   - Determinism: a seed fully determines the outcome. Seed 0 selects a
//     fixed default stream, never wall-clock state. Compare derives an
//     independent stream per run, so results are identical whatever the
//     Workers setting or goroutine schedule.
//   - No logging, no panics on user input — only sentinel errors from
//     types.go.
//
// The swap neighborhood is quadratic in tour size and every neighbor
// evaluation is linear, so a single iteration costs O(n³). This engine
// targets algorithm experimentation on instances up to a few hundred
// cities, not production routing.
package hillclimb
