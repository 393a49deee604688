package domain

// Cue is one timed subtitle entry.
//
// Index is the block's declared sequence number, falling back to parse order
// when absent or non-numeric. RawText is sanitized display text: markup
// stripped, whitespace collapsed, never empty. StyledText is the same text
// with italic boundaries preserved as private sentinel runes; it equals
// RawText when the block carried no italics. Tokens is attached lazily by
// whichever consumer needs it and is regenerable from RawText, so any
// persistence layer may drop it as long as the other fields round-trip
// exactly.
type Cue struct {
	Index      int     `json:"index"`
	StartMs    int64   `json:"startMs"`
	EndMs      int64   `json:"endMs"`
	RawText    string  `json:"rawText"`
	StyledText string  `json:"styledText,omitempty"`
	Tokens     []Token `json:"tokens,omitempty"`
}

// Duration returns the cue's on-screen time in milliseconds.
func (c *Cue) Duration() int64 {
	return c.EndMs - c.StartMs
}
