package impex

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
	"github.com/ofirgaash1/engsub/internal/subtitle"
)

const (
	fieldOriginal = "original"
	fieldStatus   = "status"
)

// fieldSynonyms enumerates every accepted source spelling per canonical
// field. Backups produced by other tools name these differently; the full
// table lives here instead of scattered shape checks.
var fieldSynonyms = map[string][]string{
	fieldOriginal: {"original", "word", "text", "term"},
	fieldStatus:   {"status", "state"},
}

// statusSynonyms maps accepted status spellings to stored statuses.
var statusSynonyms = map[string]domain.WordStatus{
	"learning": domain.WordStatusLearning,
	"new":      domain.WordStatusLearning,
	"unknown":  domain.WordStatusLearning,
	"mastered": domain.WordStatusMastered,
	"known":    domain.WordStatusMastered,
	"learned":  domain.WordStatusMastered,
}

// canonicalField is the reverse synonym lookup, built once at init.
var canonicalField = func() map[string]string {
	m := make(map[string]string)
	for canonical, synonyms := range fieldSynonyms {
		for _, s := range synonyms {
			m[s] = canonical
		}
	}
	return m
}()

// ImportError describes why one backup record was not imported.
type ImportError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportReport summarizes one import run.
type ImportReport struct {
	Processed int           `json:"processed"`
	Imported  int           `json:"imported"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	Errors    []ImportError `json:"errors,omitempty"`
}

// record is one decoded backup entry with canonical field names.
type record struct {
	line   int
	fields map[string]string
}

// Import reads a backup and tracks every valid word in it. Each record
// either parses into a word or fails with a per-line reason; duplicates
// within the backup and words already tracked are skipped, never errors.
func (s *Service) Import(ctx context.Context, format Format, r io.Reader) (*ImportReport, error) {
	records, err := decodeRecords(format, r)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{Processed: len(records)}
	seen := make(map[string]bool)
	now := time.Now().UTC()

	var batch []domain.Word
	for _, rec := range records {
		word, reason := parseRecord(rec, now)
		if reason != "" {
			report.Failed++
			report.Errors = append(report.Errors, ImportError{Line: rec.line, Reason: reason})
			continue
		}

		if seen[word.Normalized] {
			report.Skipped++
			report.Errors = append(report.Errors, ImportError{Line: rec.line, Reason: "duplicate within import"})
			continue
		}
		seen[word.Normalized] = true

		batch = append(batch, *word)
	}

	inserted, err := s.words.CreateBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("insert imported words: %w", err)
	}

	report.Imported = inserted
	// The remainder collided with words already tracked; the insert keeps
	// the existing rows untouched.
	report.Skipped += len(batch) - inserted

	s.log.InfoContext(ctx, "import finished",
		"format", format,
		"processed", report.Processed,
		"imported", report.Imported,
		"skipped", report.Skipped,
		"failed", report.Failed)

	return report, nil
}

// parseRecord validates one record into a trackable word, or returns the
// reason it cannot be one.
func parseRecord(rec record, now time.Time) (*domain.Word, string) {
	original := strings.TrimSpace(rec.fields[fieldOriginal])
	if original == "" {
		return nil, "missing word"
	}
	if utf8.RuneCountInString(original) > 100 {
		return nil, "word too long"
	}

	status := domain.WordStatusLearning
	if raw := strings.ToLower(strings.TrimSpace(rec.fields[fieldStatus])); raw != "" {
		mapped, ok := statusSynonyms[raw]
		if !ok {
			return nil, fmt.Sprintf("unrecognized status %q", raw)
		}
		status = mapped
	}

	return &domain.Word{
		ID:         uuid.New(),
		Original:   original,
		Normalized: domain.NormalizeWord(original),
		Stem:       subtitle.Stem(original),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, ""
}

func decodeRecords(format Format, r io.Reader) ([]record, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatCSV:
		return decodeCSV(r)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrValidation, format)
	}
}

// decodeJSON accepts either a full export bundle ({"words": [...]}) or a
// bare array of word objects. Lines number the array elements from 1.
func decodeJSON(r io.Reader) ([]record, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import payload: %w", err)
	}

	var raw []map[string]any

	var bundle struct {
		Words []map[string]any `json:"words"`
	}
	if err := json.Unmarshal(payload, &bundle); err == nil && bundle.Words != nil {
		raw = bundle.Words
	} else if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, domain.NewValidationError("body", "not a JSON word list")
	}

	records := make([]record, 0, len(raw))
	for i, obj := range raw {
		fields := make(map[string]string)
		for key, value := range obj {
			canonical, ok := canonicalField[strings.ToLower(strings.TrimSpace(key))]
			if !ok {
				continue
			}
			fields[canonical] = valueString(value)
		}
		records = append(records, record{line: i + 1, fields: fields})
	}

	return records, nil
}

// decodeCSV maps header columns through the synonym table and reads one
// record per data row. Lines number physical file lines, header included.
func decodeCSV(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewValidationError("body", "empty CSV")
	}
	if err != nil {
		return nil, domain.NewValidationError("body", "malformed CSV header")
	}

	columns := make(map[int]string)
	for i, name := range header {
		if canonical, ok := canonicalField[strings.ToLower(strings.TrimSpace(name))]; ok {
			columns[i] = canonical
		}
	}
	if !hasColumn(columns, fieldOriginal) {
		return nil, domain.NewValidationError("body", "no recognized word column in CSV header")
	}

	var records []record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewValidationError("body", fmt.Sprintf("malformed CSV at line %d", line))
		}

		fields := make(map[string]string)
		for i, value := range row {
			if canonical, ok := columns[i]; ok {
				fields[canonical] = value
			}
		}
		records = append(records, record{line: line, fields: fields})
	}

	return records, nil
}

func hasColumn(columns map[int]string, canonical string) bool {
	for _, c := range columns {
		if c == canonical {
			return true
		}
	}
	return false
}

// valueString renders a JSON value for field parsing. Non-scalar values
// become empty so they fail validation instead of importing garbage.
func valueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%v", t), ".0")
	case bool:
		return fmt.Sprintf("%v", t)
	case nil:
		return ""
	default:
		return ""
	}
}
