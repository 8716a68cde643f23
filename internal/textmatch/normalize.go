package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Punctuation stripped before comparison, including the Spanish inverted marks
const punctuation = "\"'`.,;:!?()-¿¡«»“”‘’"

// foldAccents decomposes to NFD, drops the combining marks and recomposes,
// so accented letters collapse to their base letter
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text for comparison: lowercase, accents folded
// to their base letters, punctuation removed, whitespace runs collapsed to a
// single space and trimmed. Total and idempotent; never fails on any input.
func Normalize(text string) string {
	s := strings.ToLower(text)
	if folded, _, err := transform.String(foldAccents, s); err == nil {
		s = folded
	}
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
