package subtitle

import (
	"strings"
	"unicode"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// Punctuation classes for merge and spacing decisions. Opening marks bind to
// the word after them; closing marks and sentence terminators bind to the
// word before them. Typewriter quotes only appear in the opening class.
var noSpaceAfterRunes = map[rune]struct{}{
	'(': {}, '[': {}, '{': {}, '"': {}, '\'': {},
	'«': {}, '“': {}, '‘': {}, '¿': {}, '¡': {},
	'（': {}, '「': {}, '『': {}, '【': {}, '《': {},
}

var noSpaceBeforeRunes = map[rune]struct{}{
	')': {}, ']': {}, '}': {}, '.': {}, ',': {}, '!': {}, '?': {},
	';': {}, ':': {}, '%': {}, '…': {}, '»': {}, '”': {}, '’': {},
	'。': {}, '、': {}, '，': {}, '！': {}, '？': {}, '：': {}, '；': {},
	'」': {}, '』': {}, '】': {}, '》': {}, '）': {},
	'،': {}, '؛': {}, '؟': {},
}

// DisplayOptions controls display-token construction for one cue.
type DisplayOptions struct {
	RTL bool
}

// TokenizeWithItalics splits styled cue text on the italic sentinel runes,
// tokenizes each segment independently, and tags every token with the italic
// state active where its segment appeared. Italic state resets per cue and
// always starts false.
func TokenizeWithItalics(styledText string) []domain.StyledToken {
	var out []domain.StyledToken
	italic := false
	var segment strings.Builder

	flush := func() {
		text := strings.TrimSpace(segment.String())
		segment.Reset()
		if text == "" {
			return
		}
		for _, tok := range Tokenize(text) {
			out = append(out, domain.StyledToken{Token: tok, Italic: italic})
		}
	}

	for _, r := range styledText {
		switch string(r) {
		case italicOn:
			flush()
			italic = true
		case italicOff:
			flush()
			italic = false
		default:
			segment.WriteRune(r)
		}
	}
	flush()
	return out
}

// BuildDisplayTokens produces the final renderable unit sequence for one
// cue: leading and trailing punctuation is merged into adjacent words, and
// for right-to-left cues a stray leading period run is moved to the end of
// the sequence. Pure function of its input.
func BuildDisplayTokens(tokens []domain.StyledToken, opts DisplayOptions) []domain.DisplayToken {
	if len(tokens) == 0 {
		return nil
	}
	if opts.RTL {
		tokens = reorderLeadingPeriods(tokens)
	}

	var out []domain.DisplayToken
	prefix := ""
	prefixItalic := false

	for i, st := range tokens {
		tok := st.Token
		switch {
		case accumulatesAsPrefix(tokens, i, opts):
			prefix += tok.Text
			prefixItalic = prefixItalic || st.Italic

		case isNoSpaceBefore(tok) && len(out) > 0:
			// Closing punctuation glues onto the previous display token.
			last := &out[len(out)-1]
			last.Text += tok.Text
			last.Italic = last.Italic || st.Italic

		default:
			text := prefix + tok.Text
			italic := prefixItalic || st.Italic
			prefix, prefixItalic = "", false
			if strings.TrimSpace(text) == "" {
				continue
			}
			out = append(out, domain.DisplayToken{
				Token:  tok,
				Text:   text,
				Italic: italic,
			})
		}
	}

	// Trailing opening punctuation with no word to attach to becomes a final
	// synthetic non-word display token.
	if strings.TrimSpace(prefix) != "" {
		out = append(out, domain.DisplayToken{
			Token:  domain.Token{Text: prefix, Normalized: prefix, Stem: prefix, IsWord: false},
			Text:   prefix,
			Italic: prefixItalic,
		})
	}

	return out
}

// ShouldAddSpaceBefore decides whether the rendering layer inserts a visual
// gap before next. This is distinct from the merge logic above, which
// controls token identity: by the time this runs, absorbed punctuation is
// already part of its neighbor.
func ShouldAddSpaceBefore(prev, next *domain.DisplayToken) bool {
	if prev == nil {
		return false
	}
	if isNoSpaceBefore(next.Token) {
		return false
	}
	if isNoSpaceAfter(prev.Token) {
		return false
	}
	return isWordLike(prev.Token) || isWordLike(next.Token)
}

// reorderLeadingPeriods corrects a direction artifact in RTL subtitle
// sources: a stray leading period run that renders as visually misplaced
// punctuation. When the cue starts with period-only non-word tokens followed
// by a word-like token, the whole leading run moves to the end. This is a
// narrow heuristic, not a BiDi algorithm.
func reorderLeadingPeriods(tokens []domain.StyledToken) []domain.StyledToken {
	n := 0
	for n < len(tokens) && !isWordLike(tokens[n].Token) && isPeriodRun(tokens[n].Token.Text) {
		n++
	}
	if n == 0 || n >= len(tokens) || !isWordLike(tokens[n].Token) {
		return tokens
	}
	reordered := make([]domain.StyledToken, 0, len(tokens))
	reordered = append(reordered, tokens[n:]...)
	return append(reordered, tokens[:n]...)
}

// accumulatesAsPrefix reports whether tokens[i] is carried forward and glued
// onto the next word-like token instead of being emitted on its own.
func accumulatesAsPrefix(tokens []domain.StyledToken, i int, opts DisplayOptions) bool {
	tok := tokens[i].Token
	if isWordLike(tok) {
		return false
	}
	if !isNoSpaceAfter(tok) && !(opts.RTL && isPeriodRun(tok.Text)) {
		return false
	}
	for j := i + 1; j < len(tokens); j++ {
		if isWordLike(tokens[j].Token) {
			return true
		}
	}
	return false
}

// isWordLike treats pure digit runs like words: numbers receive word
// spacing, not punctuation spacing.
func isWordLike(tok domain.Token) bool {
	return tok.IsWord || IsDigitRun(tok.Text)
}

func isPeriodRun(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r != '.' {
			return false
		}
	}
	return true
}

func isNoSpaceAfter(tok domain.Token) bool {
	return isPunctClass(tok, noSpaceAfterRunes)
}

func isNoSpaceBefore(tok domain.Token) bool {
	return isPunctClass(tok, noSpaceBeforeRunes)
}

func isPunctClass(tok domain.Token, class map[rune]struct{}) bool {
	if tok.IsWord || tok.Text == "" || IsDigitRun(tok.Text) {
		return false
	}
	for _, r := range tok.Text {
		if _, ok := class[r]; !ok {
			return false
		}
	}
	return true
}

// DetectRTL reports whether text's first strong directional character
// belongs to a right-to-left script (Hebrew or Arabic).
func DetectRTL(text string) bool {
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Hebrew, r) || unicode.Is(unicode.Arabic, r):
			return true
		case unicode.IsLetter(r):
			return false
		}
	}
	return false
}
