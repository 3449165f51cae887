package tsplib

import (
	"errors"

	"github.com/katalvlaran/tourbench/dist"
)

// ErrNoNodeCoordSection indicates the input contains no NODE_COORD_SECTION marker.
var ErrNoNodeCoordSection = errors.New("tsplib: missing NODE_COORD_SECTION")

// ErrBadNodeLine indicates a coordinate line that does not parse as <id> <x> <y>.
var ErrBadNodeLine = errors.New("tsplib: malformed coordinate line")

// ErrDuplicateID indicates the same city id appears on more than one line.
var ErrDuplicateID = errors.New("tsplib: duplicate city id")

// ErrNoCities indicates the coordinate section closed without a single city.
var ErrNoCities = errors.New("tsplib: no cities parsed")

// City is a single parsed coordinate line.
type City struct {
	// ID is the identifier from the input file (unique, not necessarily contiguous).
	ID int

	// X, Y are the planar coordinates.
	X, Y float64
}

// Instance is a parsed problem instance. Cities are sorted by ascending ID;
// their position in the slice is the 0-based rank used by distance tables
// and tours throughout the module.
type Instance struct {
	Cities []City
}

// Len returns the number of cities in the instance.
func (in *Instance) Len() int {
	return len(in.Cities)
}

// Points returns the city coordinates in rank order, ready for dist.NewTable.
//
// Complexity: O(n) time and space.
func (in *Instance) Points() []dist.Point {
	var pts = make([]dist.Point, len(in.Cities))
	var i int
	for i = 0; i < len(in.Cities); i++ {
		pts[i] = dist.Point{X: in.Cities[i].X, Y: in.Cities[i].Y}
	}

	return pts
}

// IDs returns the rank→identifier mapping in rank order. Search engines
// operate on ranks; the mapping is applied only when emitting solutions.
//
// Complexity: O(n) time and space.
func (in *Instance) IDs() []int {
	var ids = make([]int, len(in.Cities))
	var i int
	for i = 0; i < len(in.Cities); i++ {
		ids[i] = in.Cities[i].ID
	}

	return ids
}
