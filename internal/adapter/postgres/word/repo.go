// Package word implements the tracked-word repository using PostgreSQL.
package word

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ofirgaash1/engsub/internal/adapter/postgres"
	"github.com/ofirgaash1/engsub/internal/domain"
)

// Repo provides tracked-word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordsTable = "words"

var wordColumns = []string{"id", "original", "normalized", "stem", "status", "created_at", "updated_at"}

// row mirrors the words table for scany.
type row struct {
	ID         uuid.UUID `db:"id"`
	Original   string    `db:"original"`
	Normalized string    `db:"normalized"`
	Stem       string    `db:"stem"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Word {
	return domain.Word{
		ID:         r.ID,
		Original:   r.Original,
		Normalized: r.Normalized,
		Stem:       r.Stem,
		Status:     domain.WordStatus(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key.
// Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select(wordColumns...).
		From(wordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word query: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	w := rec.toDomain()
	return &w, nil
}

// GetByNormalizedOrStem returns the first word whose normalized form or stem
// matches either given value. Tracking a clicked token reuses an existing
// entry when any form collides.
// Returns domain.ErrNotFound when nothing matches.
func (r *Repo) GetByNormalizedOrStem(ctx context.Context, normalized, stem string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select(wordColumns...).
		From(wordsTable).
		Where(sq.Or{
			sq.Eq{"normalized": normalized},
			sq.Eq{"stem": stem},
			sq.Eq{"normalized": stem},
			sq.Eq{"stem": normalized},
		}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build match word query: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", uuid.Nil)
	}

	w := rec.toDomain()
	return &w, nil
}

// List returns words matching the filter. Only recency and alpha orderings
// translate to SQL; frequency and occurrence orderings are applied by the
// caller and fall back to recency here. Returns an empty slice (not nil)
// when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select(wordColumns...).
		From(wordsTable)

	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": string(*filter.Status)})
	}

	switch filter.Order {
	case domain.WordOrderAlpha:
		query = query.OrderBy("normalized ASC")
	default:
		query = query.OrderBy("updated_at DESC")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words query: %w", err)
	}

	var recs []row
	if err := pgxscan.Select(ctx, q, &recs, sql, args...); err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	words := make([]domain.Word, len(recs))
	for i, rec := range recs {
		words[i] = rec.toDomain()
	}

	return words, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new word and returns the persisted domain.Word.
// Returns domain.ErrAlreadyExists when the normalized form is already tracked.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Insert(wordsTable).
		Columns(wordColumns...).
		Values(w.ID, w.Original, w.Normalized, w.Stem, string(w.Status), w.CreatedAt, w.UpdatedAt).
		Suffix("RETURNING " + joinColumns(wordColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create word query: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", w.ID)
	}

	created := rec.toDomain()
	return &created, nil
}

// Update applies a partial update and returns the updated word.
// updated_at is always bumped, so an empty WordUpdate acts as a touch.
// Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.WordUpdate) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Update(wordsTable).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(wordColumns))

	if params.Original != nil {
		query = query.Set("original", *params.Original)
	}
	if params.Normalized != nil {
		query = query.Set("normalized", *params.Normalized)
	}
	if params.Stem != nil {
		query = query.Set("stem", *params.Stem)
	}
	if params.Status != nil {
		query = query.Set("status", string(*params.Status))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word query: %w", err)
	}

	var rec row
	if err := pgxscan.Get(ctx, q, &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	w := rec.toDomain()
	return &w, nil
}

// Delete removes a word. Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Delete(wordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete word query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CreateBatch inserts many words, skipping normalized forms that are already
// tracked (ON CONFLICT DO NOTHING). Returns the number of new rows. Used by
// import, where collisions are expected and not an error.
func (r *Repo) CreateBatch(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Insert(wordsTable).
		Columns(wordColumns...).
		Suffix("ON CONFLICT (normalized) DO NOTHING")
	for _, w := range words {
		query = query.Values(w.ID, w.Original, w.Normalized, w.Stem, string(w.Status), w.CreatedAt, w.UpdatedAt)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build batch insert words query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "word", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
