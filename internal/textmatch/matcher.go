package textmatch

import (
	"math"
	"strings"
)

// Config holds the tolerance tunables for answer judging
type Config struct {
	// Minimum fraction of expected tokens that must appear in the answer
	OverlapThreshold float64
	// Maximum edit distance as a fraction of the normalized expected length
	EditThreshold float64
}

// DefaultConfig returns the default matching tolerances
func DefaultConfig() Config {
	return Config{
		OverlapThreshold: 0.45,
		EditThreshold:    0.25,
	}
}

// Judge reports whether a free-text answer is acceptably close to the expected
// translation. Checks run cheapest first: exact equality after normalization,
// then token overlap (tolerates reordering and dropped function words), then
// edit distance (tolerates small misspellings). An empty submission is never
// correct, even when the expected answer normalizes to empty as well.
func Judge(userAnswer, expected string, cfg Config) bool {
	answer := Normalize(userAnswer)
	want := Normalize(expected)

	if answer == "" {
		return false
	}
	if answer == want {
		return true
	}

	// Token overlap: membership test against the answer tokens, not multiset
	// matching, so one occurrence in the answer satisfies any number of
	// occurrences in the expected text
	wantTokens := strings.Split(want, " ")
	present := make(map[string]bool)
	for _, tok := range strings.Split(answer, " ") {
		present[tok] = true
	}
	common := 0
	for _, tok := range wantTokens {
		if present[tok] {
			common++
		}
	}
	denom := len(wantTokens)
	if denom < 1 {
		denom = 1
	}
	if float64(common)/float64(denom) >= cfg.OverlapThreshold {
		return true
	}

	maxAllowed := int(math.Ceil(float64(len([]rune(want))) * cfg.EditThreshold))
	return Levenshtein(answer, want) <= maxAllowed
}
