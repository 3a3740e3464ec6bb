package rectangle

import (
	"fmt"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of ints.
// A cell is filled when its value is ≥ opts.FilledThreshold; a threshold ≤ 0
// means 1, so the zero GridOptions reads values as a 0/1 matrix.
// The input is copied; later changes to values do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadWorkers for Workers < 0.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	h, w, err := shape(len(values), func(y int) int { return len(values[y]) })
	if err != nil {
		return nil, err
	}
	if opts.Workers < 0 {
		return nil, ErrBadWorkers
	}
	threshold := opts.FilledThreshold
	if threshold <= 0 {
		threshold = 1
	}
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		for x, v := range values[y] {
			cells[y][x] = v >= threshold
		}
	}

	return newGrid(cells, opts), nil
}

// FromBytes constructs a Grid from rows of '0'/'1' bytes, the usual exercise
// encoding. Any other byte yields ErrInvalidMarker.
// Shape errors are the same as NewGrid.
func FromBytes(rows [][]byte, opts GridOptions) (*Grid, error) {
	h, w, err := shape(len(rows), func(y int) int { return len(rows[y]) })
	if err != nil {
		return nil, err
	}
	if opts.Workers < 0 {
		return nil, ErrBadWorkers
	}
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		for x, b := range rows[y] {
			switch b {
			case '1':
				cells[y][x] = true
			case '0':
			default:
				return nil, fmt.Errorf("cell (%d,%d) = %q: %w", y, x, b, ErrInvalidMarker)
			}
		}
	}

	return newGrid(cells, opts), nil
}

// FromStrings is FromBytes over string rows such as "10100".
func FromStrings(rows []string, opts GridOptions) (*Grid, error) {
	bs := make([][]byte, len(rows))
	for i, r := range rows {
		bs[i] = []byte(r)
	}

	return FromBytes(bs, opts)
}

// shape validates row count and row lengths through rowLen.
func shape(rows int, rowLen func(y int) int) (h, w int, err error) {
	if rows == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	w = rowLen(0)
	for y := 1; y < rows; y++ {
		if rowLen(y) != w {
			return 0, 0, ErrNonRectangular
		}
	}

	return rows, w, nil
}

func newGrid(cells [][]bool, opts GridOptions) *Grid {
	workers := opts.Workers
	if workers == 0 {
		workers = 1
	}

	return &Grid{
		Width:   len(cells[0]),
		Height:  len(cells),
		Cells:   cells,
		workers: workers,
	}
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Filled reports whether (row, col) is in bounds and filled.
// Complexity: O(1).
func (g *Grid) Filled(row, col int) bool {
	return g.InBounds(row, col) && g.Cells[row][col]
}

// Workers returns the effective row parallelism (always ≥ 1).
func (g *Grid) Workers() int { return g.workers }
