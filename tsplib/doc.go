// Package tsplib parses TSPLIB-style planar coordinate files.
//
// The accepted format is the NODE_COORD_SECTION subset:
//
//	NAME: berlin52            ← header lines before the section are ignored
//	NODE_COORD_SECTION        ← marker opening the coordinate section
//	1 565.0 575.0             ← one city per line: <integer id> <real x> <real y>
//	2 25.0 185.0
//	...
//	EOF                       ← marker closing the file (optional on truncated input)
//
// Rules:
//   - Lines before NODE_COORD_SECTION are ignored verbatim.
//   - Inside the section every line must parse as id/x/y; the first
//     malformed line aborts with a wrapped sentinel (no silent defaults).
//   - City ids must be unique positive integers, not necessarily contiguous.
//   - Cities are reordered by ascending id; rank order (0-based position
//     after sorting) is the index space used by dist.Table and tours.
//
// Errors are strict sentinels (ErrNoNodeCoordSection, ErrBadNodeLine,
// ErrDuplicateID, ErrNoCities) wrapped with line context at the I/O
// boundary so callers can both match with errors.Is and report precisely.
package tsplib
