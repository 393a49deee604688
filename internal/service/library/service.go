// Package library manages the stored subtitle files: registering uploads,
// serving their cues, and deleting them.
package library

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
)

type fileRepo interface {
	Create(ctx context.Context, f *domain.SubtitleFile) (*domain.SubtitleFile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SubtitleFile, error)
	GetByHash(ctx context.Context, contentHash string) (*domain.SubtitleFile, error)
	List(ctx context.Context) ([]domain.SubtitleFile, error)
	ListCues(ctx context.Context, fileID uuid.UUID) ([]domain.Cue, error)
	ListCuesByFileIDs(ctx context.Context, fileIDs []uuid.UUID) (map[uuid.UUID][]domain.Cue, error)
	InsertCues(ctx context.Context, fileID uuid.UUID, cues []domain.Cue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// cueParser is the off-goroutine parsing boundary.
type cueParser interface {
	Parse(ctx context.Context, text string) ([]domain.Cue, error)
}

type cueCache interface {
	Get(ctx context.Context, contentHash string) ([]domain.Cue, bool)
	Set(ctx context.Context, contentHash string, cues []domain.Cue)
	Invalidate(ctx context.Context, contentHash string)
}

// Service implements subtitle library use cases.
type Service struct {
	files  fileRepo
	tx     txManager
	parser cueParser
	cache  cueCache
	log    *slog.Logger
}

// NewService creates a library service.
func NewService(files fileRepo, tx txManager, parser cueParser, cache cueCache, log *slog.Logger) *Service {
	return &Service{
		files:  files,
		tx:     tx,
		parser: parser,
		cache:  cache,
		log:    log.With("service", "library"),
	}
}
