// Package report — solution-file writer.
//
// The solution format is one city identifier per line in tour order, no
// header: the minimal artifact a downstream plotter or checker needs to
// reconstruct the route. Rows go through encoding/csv (single-field
// records) so quoting and line endings stay consistent with the curves
// writer.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteTour writes ids to w, one identifier per line, in tour order.
// An empty tour is a caller bug, reported as ErrEmptyData rather than
// rendered as an empty artifact.
//
// Complexity: O(n).
func WriteTour(w io.Writer, ids []int) error {
	if len(ids) == 0 {
		return ErrEmptyData
	}

	var cw = csv.NewWriter(w)
	var id int
	for _, id = range ids {
		if err := cw.Write([]string{strconv.Itoa(id)}); err != nil {
			return fmt.Errorf("report: write tour row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush tour: %w", err)
	}

	return nil
}

// WriteTourFile writes ids to a fresh file at path via WriteTour.
// An existing file is truncated.
func WriteTourFile(path string, ids []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}

	if err = WriteTour(f, ids); err != nil {
		_ = f.Close() // surfacing the write error; close error is secondary

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}

	return nil
}
