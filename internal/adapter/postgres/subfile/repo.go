// Package subfile implements the subtitle-file repository using PostgreSQL.
// A file row owns its cue rows; deleting the file cascades to the cues.
package subfile

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ofirgaash1/engsub/internal/adapter/postgres"
	"github.com/ofirgaash1/engsub/internal/domain"
)

// Repo provides subtitle-file and cue persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subtitle-file repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// fileRow mirrors the subtitle_files table for scany.
type fileRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	ContentHash string    `db:"content_hash"`
	CueCount    int       `db:"cue_count"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r fileRow) toDomain() domain.SubtitleFile {
	return domain.SubtitleFile{
		ID:          r.ID,
		Name:        r.Name,
		ContentHash: r.ContentHash,
		CueCount:    r.CueCount,
		CreatedAt:   r.CreatedAt,
	}
}

// cueRow mirrors the cues table for scany. pos is the array position within
// the file; cue_index is the index parsed from the source (they differ when
// the source omits index lines).
type cueRow struct {
	FileID     uuid.UUID `db:"file_id"`
	Pos        int       `db:"pos"`
	CueIndex   int       `db:"cue_index"`
	StartMs    int64     `db:"start_ms"`
	EndMs      int64     `db:"end_ms"`
	RawText    string    `db:"raw_text"`
	StyledText string    `db:"styled_text"`
}

func (r cueRow) toDomain() domain.Cue {
	return domain.Cue{
		Index:      r.CueIndex,
		StartMs:    r.StartMs,
		EndMs:      r.EndMs,
		RawText:    r.RawText,
		StyledText: r.StyledText,
	}
}

const insertCueSQL = `
INSERT INTO cues (file_id, pos, cue_index, start_ms, end_ms, raw_text, styled_text)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a subtitle file by primary key.
// Returns domain.ErrNotFound if the file does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SubtitleFile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("id", "name", "content_hash", "cue_count", "created_at").
		From("subtitle_files").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get file query: %w", err)
	}

	var rec fileRow
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "subtitle_file", id)
	}

	f := rec.toDomain()
	return &f, nil
}

// GetByHash returns the file with the given content hash, making repeated
// uploads of identical content idempotent.
// Returns domain.ErrNotFound when the hash is unknown.
func (r *Repo) GetByHash(ctx context.Context, contentHash string) (*domain.SubtitleFile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("id", "name", "content_hash", "cue_count", "created_at").
		From("subtitle_files").
		Where(sq.Eq{"content_hash": contentHash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get file by hash query: %w", err)
	}

	var rec fileRow
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "subtitle_file", uuid.Nil)
	}

	f := rec.toDomain()
	return &f, nil
}

// List returns all subtitle files ordered by name. Returns an empty slice
// (not nil) when the library is empty.
func (r *Repo) List(ctx context.Context) ([]domain.SubtitleFile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("id", "name", "content_hash", "cue_count", "created_at").
		From("subtitle_files").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list files query: %w", err)
	}

	var recs []fileRow
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("list subtitle_files: %w", err)
	}

	files := make([]domain.SubtitleFile, len(recs))
	for i, rec := range recs {
		files[i] = rec.toDomain()
	}

	return files, nil
}

// ListCues returns the cues of one file in file order.
// Returns domain.ErrNotFound if the file does not exist.
func (r *Repo) ListCues(ctx context.Context, fileID uuid.UUID) ([]domain.Cue, error) {
	if _, err := r.GetByID(ctx, fileID); err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("file_id", "pos", "cue_index", "start_ms", "end_ms", "raw_text", "styled_text").
		From("cues").
		Where(sq.Eq{"file_id": fileID}).
		OrderBy("pos ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cues query: %w", err)
	}

	var recs []cueRow
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("list cues: %w", err)
	}

	cues := make([]domain.Cue, len(recs))
	for i, rec := range recs {
		cues[i] = rec.toDomain()
	}

	return cues, nil
}

// ListCuesByFileIDs returns cues for multiple files in one query, grouped
// per file in file order. Files without cues have no map entry.
func (r *Repo) ListCuesByFileIDs(ctx context.Context, fileIDs []uuid.UUID) (map[uuid.UUID][]domain.Cue, error) {
	if len(fileIDs) == 0 {
		return map[uuid.UUID][]domain.Cue{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("file_id", "pos", "cue_index", "start_ms", "end_ms", "raw_text", "styled_text").
		From("cues").
		Where(sq.Eq{"file_id": fileIDs}).
		OrderBy("file_id ASC", "pos ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cues by files query: %w", err)
	}

	var recs []cueRow
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("list cues by files: %w", err)
	}

	result := make(map[uuid.UUID][]domain.Cue, len(fileIDs))
	for _, rec := range recs {
		result[rec.FileID] = append(result[rec.FileID], rec.toDomain())
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new subtitle file row and returns the persisted file.
// Returns domain.ErrAlreadyExists when the content hash is already stored.
func (r *Repo) Create(ctx context.Context, f *domain.SubtitleFile) (*domain.SubtitleFile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Insert("subtitle_files").
		Columns("id", "name", "content_hash", "cue_count", "created_at").
		Values(f.ID, f.Name, f.ContentHash, f.CueCount, f.CreatedAt).
		Suffix("RETURNING id, name, content_hash, cue_count, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create file query: %w", err)
	}

	var rec fileRow
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "subtitle_file", f.ID)
	}

	created := rec.toDomain()
	return &created, nil
}

// InsertCues stores a file's cues with their array positions. Intended to run
// inside the same transaction as Create; uses a pgx batch so large files do
// not cost one round-trip per cue.
func (r *Repo) InsertCues(ctx context.Context, fileID uuid.UUID, cues []domain.Cue) error {
	if len(cues) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for pos, cue := range cues {
		batch.Queue(insertCueSQL, fileID, pos, cue.Index, cue.StartMs, cue.EndMs, cue.RawText, cue.StyledText)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range cues {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "cue", fileID)
		}
	}

	return nil
}

// Delete removes a subtitle file; its cues go with it via ON DELETE CASCADE.
// Returns domain.ErrNotFound if the file does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Delete("subtitle_files").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete file query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "subtitle_file", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subtitle_file %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
