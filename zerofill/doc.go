// Package zerofill counts contiguous subarrays made only of zeros.
//
// A maximal run of k zeros contains k·(k+1)/2 zero-filled subarrays. Count
// accumulates this incrementally: the j-th zero of a run ends j new
// subarrays. Runs lists the maximal runs themselves.
//
// Complexity: O(N) time, O(1) memory for Count.
package zerofill
