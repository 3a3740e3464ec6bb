package zerofill

// Run is a maximal block of consecutive zeros starting at index Start.
type Run struct {
	Start  int
	Length int
}

// Subarrays returns the number of zero-filled subarrays inside the run.
func (r Run) Subarrays() int64 {
	k := int64(r.Length)

	return k * (k + 1) / 2
}

// Count returns the number of contiguous subarrays of nums whose elements are
// all zero. The result is int64 since it grows quadratically with len(nums).
func Count(nums []int) int64 {
	var run, total int64
	for _, v := range nums {
		if v != 0 {
			run = 0
			continue
		}
		run++
		total += run
	}

	return total
}

// Runs returns the maximal zero runs of nums in index order.
// Summing Subarrays over the result equals Count(nums).
func Runs(nums []int) []Run {
	var out []Run
	for i := 0; i < len(nums); {
		if nums[i] != 0 {
			i++
			continue
		}
		start := i
		for i < len(nums) && nums[i] == 0 {
			i++
		}
		out = append(out, Run{Start: start, Length: i - start})
	}

	return out
}
