// Package rectangle finds the largest all-filled axis-aligned rectangle in a
// binary grid by reducing it to one histogram problem per row.
//
// What:
//
//   - Grid wraps a rectangular matrix of filled/empty cells, built from
//     [][]int (with a FilledThreshold), [][]byte or []string of '0'/'1'.
//   - RunHeights computes, for every cell, how many consecutive filled cells
//     end at that row in its column.
//   - Each row of run heights is a histogram; histogram.MaxArea (or
//     histogram.Largest) on every row and the best row wins.
//
// Why:
//
//	Any all-filled rectangle has a bottom row r. Its height is bounded by
//	the run heights of row r and its width by a contiguous column range,
//	which is exactly a rectangle under the histogram of row r.
//
// Complexity:
//
//   - RunHeights:       O(W×H) time, O(W×H) memory.
//   - MaximalArea:      O(W×H) time, O(W) extra memory per row.
//   - MaximalRectangle: O(W×H) time; rows may be evaluated by GridOptions.Workers
//     goroutines once the run heights are known.
//
// Options:
//
//   - GridOptions.FilledThreshold: minimum integer value considered "filled" (≤ 0 means 1).
//   - GridOptions.Workers: row-histogram parallelism for MaximalRectangle.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidMarker: a byte/rune other than '0' or '1' in textual input.
//   - ErrBadWorkers: GridOptions.Workers is negative.
package rectangle
