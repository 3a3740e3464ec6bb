package rectangle

// GridOptions contains tunable parameters for grid construction and search.
type GridOptions struct {
	// FilledThreshold specifies the minimum cell value considered "filled"
	// when building from integers. Values ≤ 0 mean 1. Ignored by the textual
	// constructors.
	FilledThreshold int
	// Workers bounds the goroutines MaximalRectangle uses for row histograms.
	// 0 and 1 both mean sequential.
	Workers int
}

// DefaultGridOptions returns GridOptions with FilledThreshold=1 (values ≥1 are
// filled) and Workers=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		FilledThreshold: 1,
		Workers:         1,
	}
}

// Grid is an immutable binary matrix. Cells[y][x] is true for a filled cell.
// Width and Height are the column and row counts.
type Grid struct {
	Width, Height int
	Cells         [][]bool
	workers       int
}

// Rect is an all-filled rectangle in grid coordinates. Top/Bottom are
// inclusive row indices and Left/Right inclusive column indices.
// When Area is 0 the grid has no filled cell and the bounds are meaningless.
type Rect struct {
	Top, Left     int
	Bottom, Right int
	Area          int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Area == 0 }

// Rows returns the rectangle height in cells.
func (r Rect) Rows() int {
	if r.Empty() {
		return 0
	}

	return r.Bottom - r.Top + 1
}

// Cols returns the rectangle width in cells.
func (r Rect) Cols() int {
	if r.Empty() {
		return 0
	}

	return r.Right - r.Left + 1
}

// Contains reports whether cell (row, col) lies inside r.
func (r Rect) Contains(row, col int) bool {
	return !r.Empty() && row >= r.Top && row <= r.Bottom && col >= r.Left && col <= r.Right
}
