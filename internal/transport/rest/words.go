package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
	"github.com/ofirgaash1/engsub/internal/service/vocabulary"
)

// vocabularyService defines the minimal interface needed by WordHandler.
type vocabularyService interface {
	Track(ctx context.Context, in vocabulary.TrackInput) (*domain.Word, bool, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	List(ctx context.Context, in vocabulary.ListInput) ([]domain.Word, error)
	Update(ctx context.Context, id uuid.UUID, in vocabulary.UpdateInput) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WordHandler serves tracked-word endpoints.
type WordHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc vocabularyService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "words")}
}

type trackRequest struct {
	Original string `json:"original"`
}

type updateWordRequest struct {
	Original *string `json:"original"`
	Status   *string `json:"status"`
}

// Track handles POST /api/v1/words. Tracking an already-known word or one of
// its inflections returns the existing entry with 200; a fresh word is 201.
func (h *WordHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, created, err := h.svc.Track(r.Context(), vocabulary.TrackInput{Original: req.Original})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, word)
}

// Get handles GET /api/v1/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	word, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, word)
}

// List handles GET /api/v1/words?status=&order=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	var in vocabulary.ListInput

	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.WordStatus(v)
		in.Status = &status
	}
	in.Order = domain.WordOrder(r.URL.Query().Get("order"))

	words, err := h.svc.List(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if words == nil {
		words = []domain.Word{}
	}
	writeJSON(w, http.StatusOK, words)
}

// Update handles PATCH /api/v1/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := vocabulary.UpdateInput{Original: req.Original}
	if req.Status != nil {
		status := domain.WordStatus(*req.Status)
		in.Status = &status
	}

	word, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, word)
}

// Delete handles DELETE /api/v1/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
