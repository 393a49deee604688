package quote

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// Find returns every cue in the library where the word occurs, each wrapped
// in a window of radius cues on either side. A negative radius selects the
// configured default; anything above the configured maximum is clamped down.
// A word with no occurrences yields an empty slice, not an error.
func (s *Service) Find(ctx context.Context, wordID uuid.UUID, radius int) ([]domain.Quote, error) {
	word, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}

	radius = s.clampRadius(radius)

	library, err := s.cues.AllCues(ctx)
	if err != nil {
		return nil, fmt.Errorf("load library cues: %w", err)
	}

	quotes := []domain.Quote{}
	for _, fc := range library {
		quotes = append(quotes, matchFile(word, fc, radius)...)
	}

	// Files arrive name-ordered; within a file, windows are ordered by the
	// start time of their first cue.
	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].FileName != quotes[j].FileName {
			return quotes[i].FileName < quotes[j].FileName
		}
		return quotes[i].StartMs() < quotes[j].StartMs()
	})

	s.log.DebugContext(ctx, "quotes found",
		"word_id", wordID.String(), "radius", radius, "count", len(quotes))

	return quotes, nil
}

func (s *Service) clampRadius(radius int) int {
	if radius < 0 {
		return s.cfg.DefaultRadius
	}
	if radius > s.cfg.MaxRadius {
		return s.cfg.MaxRadius
	}
	return radius
}

// matchFile scans one file's cues and builds a context window around every
// cue containing the word. The window is clamped to the file bounds, so
// matches near the edges simply get fewer context cues.
func matchFile(word *domain.Word, fc domain.FileCues, radius int) []domain.Quote {
	var quotes []domain.Quote
	for i, cue := range fc.Cues {
		if !cueContains(word, cue) {
			continue
		}

		start := i - radius
		if start < 0 {
			start = 0
		}
		end := i + radius
		if end > len(fc.Cues)-1 {
			end = len(fc.Cues) - 1
		}

		window := make([]domain.Cue, end-start+1)
		copy(window, fc.Cues[start:end+1])

		quotes = append(quotes, domain.Quote{
			FileID:     fc.File.ID,
			FileName:   fc.File.Name,
			Cues:       window,
			FocusIndex: i - start,
		})
	}
	return quotes
}

func cueContains(word *domain.Word, cue domain.Cue) bool {
	for _, tok := range cue.Tokens {
		if word.Matches(tok) {
			return true
		}
	}
	return false
}
