// Package subtitle implements the subtitle text pipeline: SRT parsing into
// timed cues, tokenization of cue text into classified tokens, naive
// stemming, and display-token construction (punctuation merging, spacing,
// RTL corrections).
package subtitle

import (
	"strings"
	"unicode/utf8"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// suffixRule rewrites a word ending. At most one rule is ever applied.
type suffixRule struct {
	suffix  string
	replace string
}

// Ordered: first match wins. The possessive rules come before the bare "s"
// strip so "cavalry's" becomes "cavalry" rather than "cavalry'".
var suffixRules = []suffixRule{
	{"'s", ""},
	{"’s", ""},
	{"ies", "y"},
	{"ing", ""},
	{"ed", ""},
	{"ly", ""},
	{"es", "e"},
	{"s", ""},
}

// minStemLength guards short words like "is", "as", "was" from truncation.
const minStemLength = 4

// Stem reduces an English word to a naive root form by stripping at most one
// suffix. It is not a linguistic stemmer; it exists only to group obvious
// inflections (act, acting, acted) for highlight matching. Deterministic and
// pure: the input is lowercased and NFC-normalized before rules apply.
func Stem(word string) string {
	w := domain.NormalizeWord(word)
	if utf8.RuneCountInString(w) <= minStemLength {
		return w
	}
	for _, rule := range suffixRules {
		if strings.HasSuffix(w, rule.suffix) {
			return strings.TrimSuffix(w, rule.suffix) + rule.replace
		}
	}
	return w
}
