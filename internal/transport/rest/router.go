package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Subtitles *SubtitleHandler
	Words     *WordHandler
	Quotes    *QuoteHandler
	Impex     *ImpexHandler
}

// NewRouter mounts all API routes on a fresh mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/subtitles", h.Subtitles.Upload)
	mux.HandleFunc("GET /api/v1/subtitles", h.Subtitles.List)
	mux.HandleFunc("GET /api/v1/subtitles/{id}/cues", h.Subtitles.Cues)
	mux.HandleFunc("DELETE /api/v1/subtitles/{id}", h.Subtitles.Delete)

	mux.HandleFunc("POST /api/v1/words", h.Words.Track)
	mux.HandleFunc("GET /api/v1/words", h.Words.List)
	mux.HandleFunc("GET /api/v1/words/{id}", h.Words.Get)
	mux.HandleFunc("PATCH /api/v1/words/{id}", h.Words.Update)
	mux.HandleFunc("DELETE /api/v1/words/{id}", h.Words.Delete)
	mux.HandleFunc("GET /api/v1/words/{id}/quotes", h.Quotes.Find)

	mux.HandleFunc("GET /api/v1/export", h.Impex.Export)
	mux.HandleFunc("POST /api/v1/import", h.Impex.Import)

	return mux
}
