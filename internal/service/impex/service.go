// Package impex imports and exports the tracked word list as JSON or CSV
// backups.
package impex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// Format selects a backup encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format query value. An empty value defaults to JSON.
func ParseFormat(v string) (Format, error) {
	switch Format(v) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q", domain.ErrValidation, v)
	}
}

type wordRepo interface {
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	CreateBatch(ctx context.Context, words []domain.Word) (int, error)
}

type fileLister interface {
	List(ctx context.Context) ([]domain.SubtitleFile, error)
}

// Service implements word-list backup use cases.
type Service struct {
	words wordRepo
	files fileLister
	log   *slog.Logger
}

// NewService creates an impex service.
func NewService(words wordRepo, files fileLister, log *slog.Logger) *Service {
	return &Service{
		words: words,
		files: files,
		log:   log.With("service", "impex"),
	}
}
