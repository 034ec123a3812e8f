// Package quiz implements the quiz run state machine: a shuffled pool of
// countries walked level by level through the country, capital and geo
// steps. The package has no transport or storage dependencies; callers
// inject the random source and drive transitions explicitly.
package quiz

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks matches the combining marks left over after NFD
// decomposition, e.g. the tilde of "ã".
var combiningMarks = runes.In(unicode.Mn)

// Normalize reduces an answer to its comparable form: diacritics
// stripped, lower-cased, everything outside ASCII letters and digits
// removed. "São Paulo" becomes "saopaulo". Answers are always compared
// as Normalize(input) == Normalize(expected).
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(combiningMarks))
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
