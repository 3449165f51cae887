// Package tsplib — coordinate file reader.
//
// Parse is a single forward scan over the input: everything before the
// NODE_COORD_SECTION marker is skipped, everything between the marker and
// the EOF marker must be a well-formed coordinate line. The scan aborts on
// the first malformed line; partial results are never returned.
//
// Design:
//   - Strict sentinels from types.go, wrapped with line context via lineErrorf.
//   - No logging; callers decide how failures are reported.
//   - bufio.Scanner line scanning; default buffer limits are ample for
//     coordinate files (one short line per city).
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Markers delimiting the coordinate section. Prefix matching mirrors the
// widespread loose interpretation of the format (markers may carry trailing
// annotations on the same line).
const (
	sectionMarker = "NODE_COORD_SECTION"
	eofMarker     = "EOF"
)

// nodeLineFields is the exact field count of a coordinate line: id, x, y.
const nodeLineFields = 3

// lineErrorf wraps a sentinel with 1-based line position context.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("tsplib: line %d: %w", line, err)
}

// ParseFile opens path and parses it via Parse.
//
// Complexity: O(L) over the number of input lines, plus O(n log n) for
// the final sort by city id.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a NODE_COORD_SECTION coordinate stream into an Instance.
//
// Stage 1 (Scan): skip preamble lines until the section marker.
// Stage 2 (Collect): parse one city per line until the EOF marker or input end.
// Stage 3 (Finalize): reject empty instances, sort by ascending id.
//
// Returned errors wrap the package sentinels; match with errors.Is.
//
// Complexity: O(L + n log n) time, O(n) space.
func Parse(r io.Reader) (*Instance, error) {
	var (
		sc        = bufio.NewScanner(r)
		inSection bool             // true once the marker line was seen
		lineNo    int              // 1-based position for error context
		seen      = map[int]bool{} // city ids observed so far
		cities    []City
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		// The closing marker ends the section wherever it appears.
		if strings.HasPrefix(line, eofMarker) {
			break
		}
		if !inSection {
			if strings.HasPrefix(line, sectionMarker) {
				inSection = true
			}
			// Preamble lines (NAME, COMMENT, DIMENSION, ...) are ignored.
			continue
		}

		city, err := parseNodeLine(line)
		if err != nil {
			return nil, lineErrorf(lineNo, err)
		}
		if seen[city.ID] {
			return nil, lineErrorf(lineNo, fmt.Errorf("%w: %d", ErrDuplicateID, city.ID))
		}
		seen[city.ID] = true
		cities = append(cities, city)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read: %w", err)
	}

	if !inSection {
		return nil, ErrNoNodeCoordSection
	}
	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	// Rank order is ascending id regardless of file order.
	sort.Slice(cities, func(i, j int) bool { return cities[i].ID < cities[j].ID })

	return &Instance{Cities: cities}, nil
}

// parseNodeLine parses one coordinate line of the form "<id> <x> <y>".
// Any deviation (field count, non-integer id, non-numeric coordinate)
// yields ErrBadNodeLine wrapped with the offending detail.
//
// Complexity: O(len(line)).
func parseNodeLine(line string) (City, error) {
	fields := strings.Fields(line)
	if len(fields) != nodeLineFields {
		return City{}, fmt.Errorf("%w: want %d fields, got %d", ErrBadNodeLine, nodeLineFields, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return City{}, fmt.Errorf("%w: bad id %q", ErrBadNodeLine, fields[0])
	}

	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return City{}, fmt.Errorf("%w: bad x %q", ErrBadNodeLine, fields[1])
	}

	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return City{}, fmt.Errorf("%w: bad y %q", ErrBadNodeLine, fields[2])
	}

	return City{ID: id, X: x, Y: y}, nil
}
