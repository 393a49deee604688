package impex

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// Bundle is the JSON export payload: the full word list plus the library
// manifest, so a backup records which files the words came from.
type Bundle struct {
	ExportedAt time.Time             `json:"exportedAt"`
	Words      []WordExport          `json:"words"`
	Files      []domain.SubtitleFile `json:"files"`
}

// WordExport is one word in a JSON backup.
type WordExport struct {
	Original  string    `json:"original"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExportJSON builds the full backup bundle. Words and the file manifest load
// concurrently.
func (s *Service) ExportJSON(ctx context.Context) (*Bundle, error) {
	var (
		words []domain.Word
		files []domain.SubtitleFile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		words, err = s.words.List(gctx, domain.WordFilter{Order: domain.WordOrderAlpha})
		if err != nil {
			return fmt.Errorf("list words: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		files, err = s.files.List(gctx)
		if err != nil {
			return fmt.Errorf("list files: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	exported := make([]WordExport, len(words))
	for i, w := range words {
		exported[i] = WordExport{
			Original:  w.Original,
			Status:    string(w.Status),
			CreatedAt: w.CreatedAt,
		}
	}
	if files == nil {
		files = []domain.SubtitleFile{}
	}

	s.log.InfoContext(ctx, "export built", "format", FormatJSON, "words", len(exported))

	return &Bundle{
		ExportedAt: time.Now().UTC(),
		Words:      exported,
		Files:      files,
	}, nil
}

var csvHeader = []string{"original", "status", "created_at"}

// ExportCSV writes the word list as CSV, one word per row.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	words, err := s.words.List(ctx, domain.WordFilter{Order: domain.WordOrderAlpha})
	if err != nil {
		return fmt.Errorf("list words: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, word := range words {
		row := []string{word.Original, string(word.Status), word.CreatedAt.UTC().Format(time.RFC3339)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	s.log.InfoContext(ctx, "export built", "format", FormatCSV, "words", len(words))

	return nil
}
