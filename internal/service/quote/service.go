// Package quote finds where a tracked word occurs in the subtitle library and
// returns each occurrence with surrounding cues for context.
package quote

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/config"
	"github.com/ofirgaash1/engsub/internal/domain"
)

type wordGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
}

type cueSource interface {
	AllCues(ctx context.Context) ([]domain.FileCues, error)
}

// Service matches tracked words against library cues.
type Service struct {
	words wordGetter
	cues  cueSource
	cfg   config.QuotesConfig
	log   *slog.Logger
}

// NewService creates a quote service.
func NewService(words wordGetter, cues cueSource, cfg config.QuotesConfig, log *slog.Logger) *Service {
	return &Service{
		words: words,
		cues:  cues,
		cfg:   cfg,
		log:   log.With("service", "quote"),
	}
}
