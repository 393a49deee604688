package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
	"github.com/ofirgaash1/engsub/internal/service/library"
)

// libraryService defines the minimal interface needed by SubtitleHandler.
type libraryService interface {
	Register(ctx context.Context, in library.RegisterInput) (*domain.SubtitleFile, bool, error)
	ListFiles(ctx context.Context) ([]domain.SubtitleFile, error)
	GetCues(ctx context.Context, fileID uuid.UUID) ([]domain.Cue, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubtitleHandler serves subtitle library endpoints.
type SubtitleHandler struct {
	svc      libraryService
	maxBytes int64
	log      *slog.Logger
}

// NewSubtitleHandler creates a SubtitleHandler. maxBytes bounds the upload
// body size.
func NewSubtitleHandler(svc libraryService, maxBytes int64, logger *slog.Logger) *SubtitleHandler {
	return &SubtitleHandler{
		svc:      svc,
		maxBytes: maxBytes,
		log:      logger.With("handler", "subtitles"),
	}
}

type uploadRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Upload handles POST /api/v1/subtitles. The browser sends decoded subtitle
// text; the response is 201 for a new file, 200 when the content was already
// stored.
func (h *SubtitleHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	file, created, err := h.svc.Register(r.Context(), library.RegisterInput{
		Name: req.Name,
		Text: req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, file)
}

// List handles GET /api/v1/subtitles.
func (h *SubtitleHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.svc.ListFiles(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// Cues handles GET /api/v1/subtitles/{id}/cues.
func (h *SubtitleHandler) Cues(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	cues, err := h.svc.GetCues(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, cues)
}

// Delete handles DELETE /api/v1/subtitles/{id}.
func (h *SubtitleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
