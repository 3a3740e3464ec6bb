// Package skyline is a small set of array and grid exercises built around
// one shared core: the monotonic index stack.
//
// 🚀 What is inside?
//
//	• histogram/: largest rectangle under a histogram (MaxArea, Largest)
//	• rectangle/: largest all-filled rectangle in a binary grid, reduced to
//	               one histogram per row through run heights
//	• zerofill/:  number of zero-filled subarrays (linear scan)
//	• stack/:     the generic LIFO behind the histogram scan
//
// ✨ Properties:
//
//   - Pure functions: inputs are never mutated, results are repeatable.
//   - Empty input is not an error: every solver returns 0.
//   - O(N) histogram, O(W×H) grid, optional row parallelism for grids.
//
// Quick ASCII example:
//
//	      ▇
//	    ▇ ▇
//	    ▇ ▇
//	    ▇ ▇   ▇
//	▇   ▇ ▇ ▇ ▇
//	▇ ▇ ▇ ▇ ▇ ▇     heights [2 1 5 6 2 3] → area 10 (bars 2..3, height 5)
//
// The skyline binary (cmd/skyline) exposes every solver on the command line
// and checks TOML case suites:
//
//	go install github.com/katalvlaran/skyline/cmd/skyline@latest
package skyline
