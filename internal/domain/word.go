package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordStatus represents the review lifecycle of a tracked word.
type WordStatus string

const (
	WordStatusLearning WordStatus = "LEARNING"
	WordStatusMastered WordStatus = "MASTERED"
)

func (s WordStatus) String() string { return string(s) }

func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusLearning, WordStatusMastered:
		return true
	}
	return false
}

// Word is a user-tracked vocabulary entry, created when a word token is
// clicked in the player. Original is the token text exactly as clicked;
// Normalized and Stem are derived once at creation time and used for
// matching re-encounters of the same word or its inflections.
type Word struct {
	ID         uuid.UUID  `json:"id"`
	Original   string     `json:"original"`
	Normalized string     `json:"normalized"`
	Stem       string     `json:"stem"`
	Status     WordStatus `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Matches reports whether a token refers to this word, either by normalized
// form or by stem.
func (w Word) Matches(tok Token) bool {
	if !tok.IsWord {
		return false
	}
	return tok.Normalized == w.Normalized || tok.Stem == w.Stem
}

// WordOrder selects the sort applied to word listings.
type WordOrder string

const (
	WordOrderRecency     WordOrder = "recency"     // most recently touched first
	WordOrderAlpha       WordOrder = "alpha"       // normalized form, A→Z
	WordOrderFrequency   WordOrder = "frequency"   // common corpus words first
	WordOrderOccurrences WordOrder = "occurrences" // most occurrences in stored cues first
)

func (o WordOrder) IsValid() bool {
	switch o {
	case WordOrderRecency, WordOrderAlpha, WordOrderFrequency, WordOrderOccurrences:
		return true
	}
	return false
}

// WordFilter narrows and orders word listings.
type WordFilter struct {
	Status *WordStatus
	Order  WordOrder
}

// WordUpdate is a partial update; nil fields are left untouched. A rename
// supplies Original together with the recomputed Normalized/Stem pair.
type WordUpdate struct {
	Original   *string
	Normalized *string
	Stem       *string
	Status     *WordStatus
}
