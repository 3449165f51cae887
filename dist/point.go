// Package dist — planar geometry primitives.
package dist

import "math"

// Point is an immutable 2D city coordinate.
type Point struct {
	X, Y float64
}

// Euclidean returns the straight-line distance between a and b.
// math.Hypot is used for numerically stable sqrt(dx²+dy²).
//
// Complexity: O(1).
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
