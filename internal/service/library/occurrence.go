package library

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// AllCues returns every stored file with its full, tokenized cue list,
// ordered by file name. One grouped query fetches all cues instead of one
// query per file.
func (s *Service) AllCues(ctx context.Context) ([]domain.FileCues, error) {
	files, err := s.files.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	if len(files) == 0 {
		return []domain.FileCues{}, nil
	}

	ids := make([]uuid.UUID, len(files))
	for i, f := range files {
		ids[i] = f.ID
	}

	cuesByFile, err := s.files.ListCuesByFileIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list cues: %w", err)
	}

	result := make([]domain.FileCues, len(files))
	for i, f := range files {
		cues := cuesByFile[f.ID]
		tokenize(cues)
		result[i] = domain.FileCues{File: f, Cues: cues}
	}

	return result, nil
}

// OccurrenceIndex counts word occurrences across the whole library, for
// occurrence-ordered word listings.
func (s *Service) OccurrenceIndex(ctx context.Context) (*domain.OccurrenceIndex, error) {
	all, err := s.AllCues(ctx)
	if err != nil {
		return nil, err
	}

	index := domain.NewOccurrenceIndex()
	for _, fc := range all {
		for _, cue := range fc.Cues {
			for _, tok := range cue.Tokens {
				index.Add(tok)
			}
		}
	}

	return index, nil
}
