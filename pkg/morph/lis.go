package morph

// longestIncreasing returns the set of positions in seq that form a
// longest strictly increasing subsequence, using patience sorting with
// binary search (O(n log n)). Entries < 0 are skipped and never part of
// the result. Elements on the subsequence stay physically in place during
// the apply phase; everything else moves.
func longestIncreasing(seq []int) map[int]bool {
	result := make(map[int]bool)

	// tails[k] = position in seq of the smallest tail of any increasing
	// subsequence of length k+1.
	tails := make([]int, 0, len(seq))
	prev := make([]int, len(seq))

	for i, v := range seq {
		if v < 0 {
			prev[i] = -1
			continue
		}

		// Binary search for the first tail >= v.
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if seq[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}

		if lo > 0 {
			prev[i] = tails[lo-1]
		} else {
			prev[i] = -1
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	if len(tails) == 0 {
		return result
	}
	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		result[i] = true
	}
	return result
}
