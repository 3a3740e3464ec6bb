package histogram

import "errors"

// ErrNegativeHeight is returned by Validate when a bar has a negative height.
var ErrNegativeHeight = errors.New("histogram: heights must be non-negative")

// Span describes one candidate rectangle under the histogram.
//
// Left and Right are inclusive bar indices, Height is the rectangle height
// (the lowest bar in [Left, Right]) and Area = (Right-Left+1)·Height.
// The zero Span is returned for an empty histogram.
type Span struct {
	Left, Right int
	Height      int
	Area        int
}

