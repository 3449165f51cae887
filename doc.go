// Package tourbench is an experiment bench for the symmetric Euclidean
// TSP: swap-neighborhood hill climbing with random restarts, raced
// against a pure random-search baseline over the same instance.
//
// 🚀 What is tourbench?
//
//	A small, deterministic benchmarking toolkit that brings together:
//		• Instance parsing: NODE_COORD_SECTION coordinate files
//		• Distance tables: dense symmetric Euclidean, built once, read forever
//		• Tours & neighborhoods: permutations with all C(N,2) position swaps
//		• Engines: steepest-descent hill climbing (two control-loop shapes)
//		  and random search, both recording best-so-far trajectories
//		• A run driver: independent seeded runs, averaged convergence curves
//		• Reporting: solution files, curve CSVs, charts, run summaries
//
// ✨ Why choose tourbench?
//
//   - Reproducible – fixed seed policy with per-run derived streams;
//     identical results at any concurrency level
//   - Honest errors – sentinel Err… values, no panics on user input
//   - Stable costs – route lengths rounded to 1e-9, safe to compare
//     across platforms and in tests
//   - Small API – Options structs with defaults, plain funcs, no globals
//
// Under the hood, everything is organized under five subpackages and one
// binary:
//
//	dist/          — Euclidean geometry & the dense symmetric distance table
//	tsplib/        — NODE_COORD_SECTION instance parsing
//	tour/          — tour permutations, route length, swap neighborhoods
//	hillclimb/     — climbing & random-search engines + the comparison driver
//	report/        — solution files, curve CSVs, charts, run summaries
//	cmd/tourbench/ — the command-line bench
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	four cities on a unit square; the optimal tour is the perimeter, 4.0,
//	and every climb finds it in one adoption.
//
//	go get github.com/katalvlaran/tourbench
package tourbench
