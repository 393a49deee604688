package library

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
	"github.com/ofirgaash1/engsub/internal/subtitle"
)

// GetFile returns one stored subtitle file.
func (s *Service) GetFile(ctx context.Context, id uuid.UUID) (*domain.SubtitleFile, error) {
	file, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	return file, nil
}

// ListFiles returns all stored subtitle files ordered by name.
func (s *Service) ListFiles(ctx context.Context) ([]domain.SubtitleFile, error) {
	files, err := s.files.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

// GetCues returns a file's cues with tokens populated. Persisted cues carry
// only text, so tokens are rebuilt here.
func (s *Service) GetCues(ctx context.Context, fileID uuid.UUID) ([]domain.Cue, error) {
	cues, err := s.files.ListCues(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("list cues: %w", err)
	}

	tokenize(cues)

	return cues, nil
}

// tokenize fills in Tokens for cues that lack them.
func tokenize(cues []domain.Cue) {
	for i := range cues {
		if len(cues[i].Tokens) == 0 {
			cues[i].Tokens = subtitle.Tokenize(cues[i].RawText)
		}
	}
}
