// Package dist builds pairwise Euclidean distance tables for planar
// city coordinate sets.
//
// It provides two primitives:
//
//   - Point     — an immutable 2D coordinate.
//   - Table     — a dense symmetric n×n matrix of pairwise distances,
//     built once from a coordinate list and read-only afterwards.
//
// The table is the single source of truth for route-length evaluation:
// search engines never touch raw coordinates, only Table lookups.
//
// Properties guaranteed by construction:
//   - Symmetry:       At(i,j) == At(j,i) for all valid i, j.
//   - Zero diagonal:  At(i,i) == 0.
//   - Determinism:    identical coordinates yield bit-for-bit identical tables.
//
// Use this package when distances between a fixed set of points are
// looked up far more often than they are computed (local search does
// O(n³) lookups per pass over a table built in O(n²)).
package dist
