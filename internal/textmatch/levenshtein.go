package textmatch

// Levenshtein returns the minimum number of single-rune insertions, deletions
// and substitutions required to transform a into b. Classic dynamic programming
// over two rolling rows: O(len(a)*len(b)) time, O(min(len(a),len(b))) space.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	// Keep the shorter string on the row axis
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
