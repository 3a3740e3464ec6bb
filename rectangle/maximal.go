package rectangle

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/skyline/histogram"
)

// RunHeights returns the H×W run-height grid: out[r][c] is 0 for an empty
// cell, otherwise 1 + out[r-1][c] (1 on the first row).
// Complexity: O(W×H) time and memory.
func (g *Grid) RunHeights() [][]int {
	out := make([][]int, g.Height)
	for r := 0; r < g.Height; r++ {
		out[r] = make([]int, g.Width)
		for c := 0; c < g.Width; c++ {
			if !g.Cells[r][c] {
				continue
			}
			if r == 0 {
				out[r][c] = 1
			} else {
				out[r][c] = out[r-1][c] + 1
			}
		}
	}

	return out
}

// MaximalArea returns the area of the largest all-filled rectangle,
// 0 when no cell is filled. Only one row of run heights is kept at a time.
// Complexity: O(W×H) time, O(W) memory.
func (g *Grid) MaximalArea() int {
	acc := make([]int, g.Width)
	best := 0
	for r := 0; r < g.Height; r++ {
		advance(acc, g.Cells[r])
		if a := histogram.MaxArea(acc); a > best {
			best = a
		}
	}

	return best
}

// MaximalRectangle returns the largest all-filled rectangle with its bounds.
//
// The run-height transform is sequential (row r depends on row r-1); the
// per-row histograms are independent and run on up to Workers goroutines.
// Among rectangles of equal area the one with the smallest bottom row wins,
// so the result does not depend on Workers.
//
// The context is checked before each row; on cancellation ctx.Err() is
// returned with the zero Rect.
//
// Complexity: O(W×H) time and memory.
func (g *Grid) MaximalRectangle(ctx context.Context) (Rect, error) {
	heights := g.RunHeights()
	spans := make([]histogram.Span, g.Height)

	if g.workers <= 1 {
		for r := range heights {
			if err := ctx.Err(); err != nil {
				return Rect{}, err
			}
			spans[r] = histogram.Largest(heights[r])
		}
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(g.workers)
		for r := range heights {
			r := r
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				spans[r] = histogram.Largest(heights[r])

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return Rect{}, err
		}
	}

	var best Rect
	for r, s := range spans {
		if s.Area > best.Area {
			best = Rect{
				Top:    r - s.Height + 1,
				Left:   s.Left,
				Bottom: r,
				Right:  s.Right,
				Area:   s.Area,
			}
		}
	}

	return best, nil
}

// MaximalArea is the exercise-shaped entry point: matrix rows of '1'
// (filled) and anything else (empty). Rows may differ in length; missing
// cells count as empty. An empty matrix yields 0.
// Complexity: O(W×H) time, O(W) memory where W is the longest row.
func MaximalArea(matrix [][]byte) int {
	width := 0
	for _, row := range matrix {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return 0
	}

	acc := make([]int, width)
	filled := make([]bool, width)
	best := 0
	for _, row := range matrix {
		for c := range filled {
			filled[c] = c < len(row) && row[c] == '1'
		}
		advance(acc, filled)
		if a := histogram.MaxArea(acc); a > best {
			best = a
		}
	}

	return best
}

// advance moves the row-height accumulator down one row.
func advance(acc []int, filled []bool) {
	for c, f := range filled {
		if f {
			acc[c]++
		} else {
			acc[c] = 0
		}
	}
}
