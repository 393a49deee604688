package subtitle

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// tokenPattern matches, in priority order: a run of letters optionally
// containing internal apostrophes or hyphens ("don't", "well-known"), a run
// of digits, or a coalesced run of punctuation ("..." is one token).
// Whitespace between matches is dropped.
var tokenPattern = regexp.MustCompile(`\p{L}+(?:['\x{2019}-]\p{L}+)*|\p{N}+|[^\s\p{L}\p{N}]+`)

var digitRun = regexp.MustCompile(`^\p{N}+$`)

// Tokenize scans text in a single pass and returns classified tokens.
// It never returns an empty sequence: input the pattern cannot match at all
// (including empty input) yields a single fallback token covering the whole
// input, so downstream rendering always has something to show.
func Tokenize(text string) []domain.Token {
	matches := tokenPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return []domain.Token{fallbackToken(text)}
	}

	tokens := make([]domain.Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, classify(m))
	}
	return tokens
}

// classify builds a Token for one pattern match.
func classify(text string) domain.Token {
	first, _ := firstRune(text)
	if unicode.IsLetter(first) {
		normalized := domain.NormalizeWord(text)
		return domain.Token{
			Text:       text,
			Normalized: normalized,
			Stem:       Stem(normalized),
			IsWord:     true,
		}
	}
	// Digit and punctuation runs keep their literal form.
	return domain.Token{Text: text, Normalized: text, Stem: text, IsWord: false}
}

// fallbackToken covers input the pattern matched nothing of. IsWord is true
// only when the input contains at least one letter.
func fallbackToken(text string) domain.Token {
	isWord := strings.ContainsFunc(text, unicode.IsLetter)
	tok := domain.Token{Text: text, Normalized: text, Stem: text, IsWord: isWord}
	if isWord {
		tok.Normalized = domain.NormalizeWord(text)
		tok.Stem = Stem(tok.Normalized)
	}
	return tok
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

// IsDigitRun reports whether text is a pure run of digits. Digit runs are
// word-like for spacing purposes even though IsWord is false.
func IsDigitRun(text string) bool {
	return text != "" && digitRun.MatchString(text)
}
