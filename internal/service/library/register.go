package library

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// RegisterInput carries one decoded subtitle upload.
type RegisterInput struct {
	Name string
	Text string
}

func (in *RegisterInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	if strings.TrimSpace(in.Text) == "" {
		return domain.NewValidationError("text", "must not be empty")
	}
	return nil
}

// Register stores a subtitle file and its parsed cues. Content is addressed
// by SHA-256: uploading text that is already stored returns the existing file
// instead of a duplicate. The second return value reports whether a new file
// was created.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.SubtitleFile, bool, error) {
	if err := in.validate(); err != nil {
		return nil, false, err
	}

	hash := ContentHash(in.Text)

	existing, err := s.files.GetByHash(ctx, hash)
	if err == nil {
		s.log.InfoContext(ctx, "duplicate upload, reusing file",
			"file_id", existing.ID.String(), "name", in.Name)
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("lookup file by hash: %w", err)
	}

	cues, err := s.parseCues(ctx, hash, in.Text)
	if err != nil {
		return nil, false, err
	}
	if len(cues) == 0 {
		return nil, false, fmt.Errorf("%w: no cues found", domain.ErrParseFailed)
	}

	file := &domain.SubtitleFile{
		ID:          uuid.New(),
		Name:        in.Name,
		ContentHash: hash,
		CueCount:    len(cues),
		CreatedAt:   time.Now().UTC(),
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.files.Create(ctx, file)
		if err != nil {
			return fmt.Errorf("create file: %w", err)
		}
		file = created

		if err := s.files.InsertCues(ctx, file.ID, cues); err != nil {
			return fmt.Errorf("insert cues: %w", err)
		}
		return nil
	})
	if err != nil {
		// Two identical uploads can race past the hash lookup; the unique
		// constraint decides, and the loser returns the winner's row.
		if errors.Is(err, domain.ErrAlreadyExists) {
			if existing, lookupErr := s.files.GetByHash(ctx, hash); lookupErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	s.cache.Set(ctx, hash, cues)

	s.log.InfoContext(ctx, "subtitle file registered",
		"file_id", file.ID.String(), "name", file.Name, "cues", file.CueCount)

	return file, true, nil
}

// parseCues resolves cues from the cache or the parser pool.
func (s *Service) parseCues(ctx context.Context, hash, text string) ([]domain.Cue, error) {
	if cues, ok := s.cache.Get(ctx, hash); ok {
		s.log.DebugContext(ctx, "cue cache hit", "hash", hash)
		return cues, nil
	}

	cues, err := s.parser.Parse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("parse subtitles: %w", err)
	}
	return cues, nil
}

// ContentHash returns the hex SHA-256 of decoded subtitle text, the identity
// under which a file is stored and cached.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
