package domain

// OccurrenceIndex counts how often word tokens appear across stored cues,
// keyed by both normalized form and stem. It backs the occurrence ordering
// of word listings.
type OccurrenceIndex struct {
	byNormalized map[string]int
	byStem       map[string]int
}

func NewOccurrenceIndex() *OccurrenceIndex {
	return &OccurrenceIndex{
		byNormalized: make(map[string]int),
		byStem:       make(map[string]int),
	}
}

// Add records one token occurrence. Non-word tokens are ignored.
func (ix *OccurrenceIndex) Add(tok Token) {
	if !tok.IsWord {
		return
	}
	ix.byNormalized[tok.Normalized]++
	ix.byStem[tok.Stem]++
}

// Count returns how many stored tokens refer to a word. The stem count is
// preferred since stem matching is the broader of the two match rules; the
// normalized count covers words whose stem never appears as a token stem.
func (ix *OccurrenceIndex) Count(normalized, stem string) int {
	if c := ix.byStem[stem]; c > 0 {
		return c
	}
	return ix.byNormalized[normalized]
}
