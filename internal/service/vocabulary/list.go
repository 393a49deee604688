package vocabulary

import (
	"context"
	"fmt"
	"sort"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// List returns tracked words in the requested order. Frequency and
// occurrence orderings are computed here: the repository only knows recency
// and alphabetical sorts.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	words, err := s.words.List(ctx, domain.WordFilter{
		Status: input.Status,
		Order:  input.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	switch input.Order {
	case domain.WordOrderFrequency:
		s.sortByFrequency(words)
	case domain.WordOrderOccurrences:
		if err := s.sortByOccurrences(ctx, words); err != nil {
			return nil, err
		}
	}

	return words, nil
}

// sortByFrequency orders common corpus words first; words outside the rank
// table sort last, alphabetically.
func (s *Service) sortByFrequency(words []domain.Word) {
	const unranked = 1 << 30

	rankOf := func(w domain.Word) int {
		if rank, ok := s.freq.Rank(w.Normalized); ok {
			return rank
		}
		if rank, ok := s.freq.Rank(w.Stem); ok {
			return rank
		}
		return unranked
	}

	sort.SliceStable(words, func(i, j int) bool {
		ri, rj := rankOf(words[i]), rankOf(words[j])
		if ri != rj {
			return ri < rj
		}
		return words[i].Normalized < words[j].Normalized
	})
}

// sortByOccurrences orders words by how often they appear across stored
// cues, most frequent first. Ties break alphabetically.
func (s *Service) sortByOccurrences(ctx context.Context, words []domain.Word) error {
	index, err := s.occurrences.OccurrenceIndex(ctx)
	if err != nil {
		return fmt.Errorf("build occurrence index: %w", err)
	}

	sort.SliceStable(words, func(i, j int) bool {
		ci := index.Count(words[i].Normalized, words[i].Stem)
		cj := index.Count(words[j].Normalized, words[j].Stem)
		if ci != cj {
			return ci > cj
		}
		return words[i].Normalized < words[j].Normalized
	})

	return nil
}
