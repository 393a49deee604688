package vocabulary

import (
	"context"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// Get returns one tracked word by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return s.words.GetByID(ctx, id)
}
