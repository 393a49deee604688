package vocabulary

import (
	"strings"
	"unicode/utf8"

	"github.com/ofirgaash1/engsub/internal/domain"
)

const maxOriginalLength = 100

// TrackInput carries the clicked token text.
type TrackInput struct {
	Original string
}

func (in TrackInput) Validate() error {
	trimmed := strings.TrimSpace(in.Original)
	if trimmed == "" {
		return domain.NewValidationError("original", "must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxOriginalLength {
		return domain.NewValidationError("original", "must be at most 100 characters")
	}
	return nil
}

// UpdateInput is a partial word update: rename, status change, or both.
type UpdateInput struct {
	Original *string
	Status   *domain.WordStatus
}

func (in UpdateInput) Validate() error {
	var errs []domain.FieldError

	if in.Original == nil && in.Status == nil {
		return domain.NewValidationError("update", "at least one field must be provided")
	}
	if in.Original != nil && strings.TrimSpace(*in.Original) == "" {
		errs = append(errs, domain.FieldError{Field: "original", Message: "must not be empty"})
	}
	if in.Status != nil && !in.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be LEARNING or MASTERED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput filters and orders the word list.
type ListInput struct {
	Status *domain.WordStatus
	Order  domain.WordOrder
}

func (in ListInput) Validate() error {
	var errs []domain.FieldError

	if in.Status != nil && !in.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be LEARNING or MASTERED"})
	}
	if in.Order != "" && !in.Order.IsValid() {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be recency, alpha, frequency or occurrences"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
