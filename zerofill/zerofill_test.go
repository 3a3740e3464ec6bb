package zerofill_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyline/zerofill"
)

// TestCount_Table covers the reference inputs and boundary shapes.
func TestCount_Table(t *testing.T) {
	tests := []struct {
		name string
		nums []int
		want int64
	}{
		{"empty", nil, 0},
		{"no zeros", []int{2, 10, 2019}, 0},
		{"two runs of two", []int{1, 3, 0, 0, 2, 0, 0, 4}, 6},
		{"runs of three and two", []int{0, 0, 0, 2, 0, 0}, 9},
		{"single zero", []int{0}, 1},
		{"negative is not zero", []int{-1, 0, -1}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, zerofill.Count(tc.nums))
		})
	}
}

// TestCount_LongRun checks the k·(k+1)/2 closed form on a run that would
// overflow int32.
func TestCount_LongRun(t *testing.T) {
	nums := make([]int, 100_000)
	assert.Equal(t, int64(100_000)*100_001/2, zerofill.Count(nums))
}

// TestRuns_MatchesCount verifies Runs positions and that summing their
// subarray counts reproduces Count on random inputs.
func TestRuns_MatchesCount(t *testing.T) {
	runs := zerofill.Runs([]int{0, 0, 0, 2, 0, 0})
	assert.Equal(t, []zerofill.Run{{Start: 0, Length: 3}, {Start: 4, Length: 2}}, runs)
	assert.Nil(t, zerofill.Runs([]int{1, 2}))

	rng := rand.New(rand.NewSource(2348))
	for iter := 0; iter < 300; iter++ {
		nums := make([]int, rng.Intn(40))
		for i := range nums {
			nums[i] = rng.Intn(3)
		}
		var sum int64
		for _, r := range zerofill.Runs(nums) {
			require.Positive(t, r.Length)
			sum += r.Subarrays()
		}
		require.Equalf(t, zerofill.Count(nums), sum, "nums %v", nums)
	}
}
