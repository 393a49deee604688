package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubtitleFile is a stored subtitle track. ContentHash is the SHA-256 of the
// decoded file text; uploads with a hash already in the store are idempotent.
type SubtitleFile struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContentHash string    `json:"contentHash"`
	CueCount    int       `json:"cueCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FileCues pairs a stored file with its full cue list, for operations that
// scan the whole library.
type FileCues struct {
	File SubtitleFile
	Cues []Cue
}

// Quote is a context window of cues around one matched cue. FocusIndex marks
// which cue inside Cues is the actual match.
type Quote struct {
	FileID     uuid.UUID `json:"fileId"`
	FileName   string    `json:"fileName"`
	Cues       []Cue     `json:"cues"`
	FocusIndex int       `json:"focusIndex"`
}

// StartMs returns the start time of the window's first cue, used for
// deterministic ordering of quote results.
func (q *Quote) StartMs() int64 {
	if len(q.Cues) == 0 {
		return 0
	}
	return q.Cues[0].StartMs
}
