package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ofirgaash1/engsub/internal/service/impex"
)

// impexService defines the minimal interface needed by ImpexHandler.
type impexService interface {
	ExportJSON(ctx context.Context) (*impex.Bundle, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, format impex.Format, r io.Reader) (*impex.ImportReport, error)
}

// ImpexHandler serves word-list backup endpoints.
type ImpexHandler struct {
	svc impexService
	log *slog.Logger
}

// NewImpexHandler creates an ImpexHandler.
func NewImpexHandler(svc impexService, logger *slog.Logger) *ImpexHandler {
	return &ImpexHandler{svc: svc, log: logger.With("handler", "impex")}
}

// Export handles GET /api/v1/export?format=json|csv.
func (h *ImpexHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := impex.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	switch format {
	case impex.FormatCSV:
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="words.csv"`)
		if err := h.svc.ExportCSV(r.Context(), w); err != nil {
			// Headers may already be out; all that is left is logging.
			h.log.ErrorContext(r.Context(), "csv export failed", slog.String("error", err.Error()))
		}
	default:
		bundle, err := h.svc.ExportJSON(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, bundle)
	}
}

// Import handles POST /api/v1/import. The format comes from the ?format=
// query, falling back to the request Content-Type, defaulting to JSON.
func (h *ImpexHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("format")
	if raw == "" && strings.Contains(r.Header.Get("Content-Type"), "csv") {
		raw = string(impex.FormatCSV)
	}
	format, err := impex.ParseFormat(raw)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	report, err := h.svc.Import(r.Context(), format, r.Body)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
