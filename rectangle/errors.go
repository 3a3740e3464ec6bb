package rectangle

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("rectangle: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("rectangle: all rows must have the same length")
	// ErrInvalidMarker indicates a textual cell that is neither '0' nor '1'.
	ErrInvalidMarker = errors.New("rectangle: cell marker must be '0' or '1'")
	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("rectangle: workers must be >= 0")
)
