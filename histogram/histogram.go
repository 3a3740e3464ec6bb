package histogram

import (
	"fmt"

	"github.com/katalvlaran/skyline/stack"
)

// MaxArea returns the area of the largest rectangle under heights.
//
// Algorithm Outline:
//  1. Scan i = 0..N-1. While the top index e has heights[e] > heights[i],
//     pop e; its rectangle spans (left, i) exclusive where left is the new
//     top or -1, so width = (i-1) - left. Push i.
//  2. Drain the stack with right boundary N: width = (N-1) - left.
//  3. The answer is the largest heights[e]·width seen.
//
// Heights must be non-negative (see Validate); heights is never modified.
// An empty slice yields 0.
//
// Complexity: O(N) amortized time, O(N) memory.
func MaxArea(heights []int) int {
	if len(heights) == 0 {
		return 0
	}
	best := 0
	scan(heights, func(e, left, right int) {
		if area := heights[e] * (right - 1 - left); area > best {
			best = area
		}
	})

	return best
}

// Largest is MaxArea that also reports where the rectangle lies.
// When several rectangles share the maximum area, the first one closed by
// the scan wins. An empty slice yields the zero Span.
//
// Complexity: O(N) amortized time, O(N) memory.
func Largest(heights []int) Span {
	if len(heights) == 0 {
		return Span{}
	}
	best := Span{Area: -1}
	scan(heights, func(e, left, right int) {
		area := heights[e] * (right - 1 - left)
		if area > best.Area {
			best = Span{Left: left + 1, Right: right - 1, Height: heights[e], Area: area}
		}
	})

	return best
}

// Validate reports the first negative height, wrapped around ErrNegativeHeight.
func Validate(heights []int) error {
	for i, h := range heights {
		if h < 0 {
			return fmt.Errorf("bar %d has height %d: %w", i, h, ErrNegativeHeight)
		}
	}

	return nil
}

// scan runs the monotonic-stack pass and calls closed once per bar e, with
// the exclusive boundaries left and right of the widest rectangle of height
// heights[e]. The pop condition is strict so plateaus merge.
func scan(heights []int, closed func(e, left, right int)) {
	n := len(heights)
	st := stack.New[int](n)

	for i := 0; i < n; i++ {
		for {
			top, ok := st.Peek()
			if !ok || heights[top] <= heights[i] {
				break
			}
			st.Pop()
			closed(top, boundary(st), i)
		}
		st.Push(i)
	}

	for !st.Empty() {
		e, _ := st.Pop()
		closed(e, boundary(st), n)
	}
}

// boundary returns the current top index, or -1 for an empty stack.
func boundary(st *stack.Stack[int]) int {
	if top, ok := st.Peek(); ok {
		return top
	}

	return -1
}
