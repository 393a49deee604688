package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// quoteService defines the minimal interface needed by QuoteHandler.
type quoteService interface {
	Find(ctx context.Context, wordID uuid.UUID, radius int) ([]domain.Quote, error)
}

// QuoteHandler serves in-context quote lookups for tracked words.
type QuoteHandler struct {
	svc quoteService
	log *slog.Logger
}

// NewQuoteHandler creates a QuoteHandler.
func NewQuoteHandler(svc quoteService, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{svc: svc, log: logger.With("handler", "quotes")}
}

// Find handles GET /api/v1/words/{id}/quotes?radius=N. An omitted radius
// selects the configured default.
func (h *QuoteHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	radius := -1
	if v := r.URL.Query().Get("radius"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "radius must be a non-negative integer")
			return
		}
		radius = parsed
	}

	quotes, err := h.svc.Find(r.Context(), id, radius)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}
