// Package vocabulary manages the user's tracked-word list: words clicked in
// the player, their review status, and the orderings of the word list.
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
	"github.com/ofirgaash1/engsub/internal/freq"
)

type wordRepo interface {
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByNormalizedOrStem(ctx context.Context, normalized, stem string) (*domain.Word, error)
	Update(ctx context.Context, id uuid.UUID, params domain.WordUpdate) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
}

// occurrenceSource provides token occurrence counts over all stored cues,
// for the occurrence ordering.
type occurrenceSource interface {
	OccurrenceIndex(ctx context.Context) (*domain.OccurrenceIndex, error)
}

// Service provides tracked-word operations.
type Service struct {
	words       wordRepo
	occurrences occurrenceSource
	freq        *freq.Table
	log         *slog.Logger
}

// NewService creates a new vocabulary service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	occurrences occurrenceSource,
	freqTable *freq.Table,
) *Service {
	return &Service{
		words:       words,
		occurrences: occurrences,
		freq:        freqTable,
		log:         log.With("service", "vocabulary"),
	}
}
