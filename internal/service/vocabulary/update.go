package vocabulary

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
	"github.com/ofirgaash1/engsub/internal/subtitle"
)

// Update renames a word and/or changes its status. Renaming recomputes the
// normalized form and stem so future matching follows the new spelling.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.WordUpdate{Status: input.Status}

	if input.Original != nil {
		original := strings.TrimSpace(*input.Original)
		normalized := domain.NormalizeWord(original)
		stem := subtitle.Stem(normalized)

		params.Original = &original
		params.Normalized = &normalized
		params.Stem = &stem
	}

	updated, err := s.words.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.InfoContext(ctx, "word updated", "word_id", id.String())

	return updated, nil
}
