package library

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Delete removes a subtitle file and its cues, and drops the cached cue list
// for its content hash.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	file, err := s.files.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get file: %w", err)
	}

	if err := s.files.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}

	s.cache.Invalidate(ctx, file.ContentHash)

	s.log.InfoContext(ctx, "subtitle file deleted",
		"file_id", id.String(), "name", file.Name)

	return nil
}
