package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
	"github.com/ofirgaash1/engsub/internal/subtitle"
)

// Track records a clicked word. If an entry already matches the word's
// normalized form or stem (in either direction), that entry is touched and
// returned; otherwise a new LEARNING entry is created. The second return
// value reports whether a new entry was created.
func (s *Service) Track(ctx context.Context, input TrackInput) (*domain.Word, bool, error) {
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	original := strings.TrimSpace(input.Original)
	normalized := domain.NormalizeWord(original)
	stem := subtitle.Stem(normalized)

	existing, err := s.words.GetByNormalizedOrStem(ctx, normalized, stem)
	switch {
	case err == nil:
		touched, err := s.words.Update(ctx, existing.ID, domain.WordUpdate{})
		if err != nil {
			return nil, false, fmt.Errorf("touch word: %w", err)
		}

		s.log.InfoContext(ctx, "word re-tracked",
			"word_id", touched.ID.String(),
			"original", original,
		)
		return touched, false, nil

	case errors.Is(err, domain.ErrNotFound):
		// Fall through to creation.

	default:
		return nil, false, fmt.Errorf("match word: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.words.Create(ctx, &domain.Word{
		ID:         uuid.New(),
		Original:   original,
		Normalized: normalized,
		Stem:       stem,
		Status:     domain.WordStatusLearning,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		// A concurrent Track for the same word can win the insert race;
		// resolve it as a re-track.
		if errors.Is(err, domain.ErrAlreadyExists) {
			if existing, getErr := s.words.GetByNormalizedOrStem(ctx, normalized, stem); getErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word tracked",
		"word_id", created.ID.String(),
		"original", original,
		"stem", stem,
	)

	return created, true, nil
}
