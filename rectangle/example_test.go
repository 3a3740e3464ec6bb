package rectangle_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/skyline/rectangle"
)

// ExampleMaximalArea runs the exercise-shaped entry point on the 4×5 sample.
func ExampleMaximalArea() {
	matrix := [][]byte{
		[]byte("10100"),
		[]byte("10111"),
		[]byte("11111"),
		[]byte("10010"),
	}
	fmt.Println(rectangle.MaximalArea(matrix))
	// Output:
	// 6
}

// ExampleGrid_MaximalRectangle reports the bounds as well as the area.
// Scenario:
//
//   - Rows 1..2, columns 2..4 are all filled (2×3 = 6).
//   - Two workers evaluate the four row histograms.
func ExampleGrid_MaximalRectangle() {
	opts := rectangle.DefaultGridOptions()
	opts.Workers = 2
	g, _ := rectangle.FromStrings([]string{"10100", "10111", "11111", "10010"}, opts)

	r, _ := g.MaximalRectangle(context.Background())
	fmt.Printf("area=%d rows=%d..%d cols=%d..%d\n", r.Area, r.Top, r.Bottom, r.Left, r.Right)
	// Output:
	// area=6 rows=1..2 cols=2..4
}
