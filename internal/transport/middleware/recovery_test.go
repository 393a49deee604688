package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ofirgaash1/engsub/pkg/ctxutil"
)

func TestRecovery_PassThroughWithoutPanic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/words", nil)
	rec := httptest.NewRecorder()
	Recovery(logger)(handler).ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cues []int
		_ = cues[3] // index out of range
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subtitles", nil)
	rec := httptest.NewRecorder()
	Recovery(logger)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "internal server error" {
		t.Errorf("expected opaque body, got %q", body)
	}
}

func TestRecovery_LogsPanicValueAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("cue index out of range")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/subtitles", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-panic-1"))
	rec := httptest.NewRecorder()
	Recovery(logger)(handler).ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "panic recovered") {
		t.Errorf("expected %q in log, got %q", "panic recovered", out)
	}
	if !strings.Contains(out, "cue index out of range") {
		t.Errorf("expected panic value in log, got %q", out)
	}
	if !strings.Contains(out, "req-panic-1") {
		t.Errorf("expected request id in log, got %q", out)
	}
}
