package domain

// Token is a classified substring of cue text. Tokens are immutable value
// objects produced by the tokenizer and never mutated afterwards.
//
// Text is the exact substring as it appeared in the cue. For word tokens
// Normalized is the lowercased, NFC-normalized form and Stem its suffix-
// stripped root; for digit and punctuation tokens both equal Text.
type Token struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
	Stem       string `json:"stem"`
	IsWord     bool   `json:"isWord"`
}

// StyledToken is a token annotated with the italic state that was active
// where the token appeared. Italic state is carried per character run, not
// per sentence, and resets at every cue boundary.
type StyledToken struct {
	Token  Token
	Italic bool
}

// DisplayToken is the unit actually shown to the user. Text may differ from
// Token.Text because adjacent punctuation has been absorbed, and for
// right-to-left cues leading punctuation may have been moved to the end.
// Display tokens with empty or whitespace-only text are never emitted.
type DisplayToken struct {
	Token  Token  `json:"token"`
	Text   string `json:"text"`
	Italic bool   `json:"italic"`
}
