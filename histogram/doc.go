// Package histogram finds the largest axis-aligned rectangle that fits under
// a histogram skyline of unit-width bars.
//
// 🚀 What is it?
//
//	Given heights H[0..N-1], the answer is
//
//	  max over 0 ≤ l ≤ r < N of (r-l+1) · min(H[l..r])
//
//	computed in a single left-to-right pass with a monotonic index stack.
//
// ✨ Key features:
//   - MaxArea: the area only, O(N) amortized time, O(N) stack memory.
//   - Largest: the area plus the bar range [Left, Right] and height producing it.
//   - Validate: opt-in precondition check for negative heights.
//
// ⚙️ How the scan works:
//
//	The stack holds indices whose heights are non-decreasing bottom to top.
//	When bar i is strictly lower than the top bar e, e cannot extend past i,
//	so e is popped and its widest rectangle is closed:
//
//	  right = i (exclusive), left = new top or -1 (exclusive)
//	  width = (i-1) - left
//
//	Equal heights are never popped early; a plateau is closed in one go once
//	a strictly lower bar (or the end of input, right = N) forces it.
//
// Empty input:
//
//	A zero-length histogram has area 0. No error is signalled.
//
// Usage:
//
//	import "github.com/katalvlaran/skyline/histogram"
//
//	area := histogram.MaxArea([]int{2, 1, 5, 6, 2, 3}) // 10
//	span := histogram.Largest([]int{2, 1, 5, 6, 2, 3}) // {Left:2 Right:3 Height:5 Area:10}
//
// Complexity:
//
//   - Time:   O(N) amortized (each index is pushed and popped once).
//   - Memory: O(N) for the index stack.
package histogram
