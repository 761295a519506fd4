package util

// Levenshtein returns the rune-level edit distance between a and b.
// Two rolling rows keep allocations at O(min-side).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			best := prev[j-1] // substitute
			if prev[j] < best {
				best = prev[j] // delete
			}
			if cur[j-1] < best {
				best = cur[j-1] // insert
			}
			cur[j] = best + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
