package histogram_test

import "math/rand"

// bruteMaxArea is the O(N²) oracle: every (l, r) pair with a running minimum.
func bruteMaxArea(h []int) int {
	best := 0
	for l := range h {
		low := h[l]
		for r := l; r < len(h); r++ {
			if h[r] < low {
				low = h[r]
			}
			if area := (r - l + 1) * low; area > best {
				best = area
			}
		}
	}

	return best
}

// randomHeights returns n heights in [0, maxH] from a seeded source.
func randomHeights(rng *rand.Rand, n, maxH int) []int {
	h := make([]int, n)
	for i := range h {
		h[i] = rng.Intn(maxH + 1)
	}

	return h
}
