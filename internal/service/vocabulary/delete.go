package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Delete removes a tracked word.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted", "word_id", id.String())

	return nil
}
