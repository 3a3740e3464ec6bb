package rectangle_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/skyline/rectangle"
)

// newBenchGrid builds an n×n grid where roughly 3 of 4 cells are filled.
func newBenchGrid(b *testing.B, n, workers int) *rectangle.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			values[y][x] = rng.Intn(4)
		}
	}
	opts := rectangle.DefaultGridOptions()
	opts.Workers = workers
	g, err := rectangle.NewGrid(values, opts)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkMaximalArea_1000 measures the O(W) memory path.
func BenchmarkMaximalArea_1000(b *testing.B) {
	g := newBenchGrid(b, 1000, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.MaximalArea()
	}
}

// BenchmarkMaximalRectangle_Sequential1000 uses a single worker.
func BenchmarkMaximalRectangle_Sequential1000(b *testing.B) {
	g := newBenchGrid(b, 1000, 1)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.MaximalRectangle(ctx)
	}
}

// BenchmarkMaximalRectangle_Parallel1000 uses 8 workers for row histograms.
func BenchmarkMaximalRectangle_Parallel1000(b *testing.B) {
	g := newBenchGrid(b, 1000, 8)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.MaximalRectangle(ctx)
	}
}
