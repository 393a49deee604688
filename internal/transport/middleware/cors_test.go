package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ofirgaash1/engsub/internal/config"
)

// The player dev server runs on a Vite port while the API sits on 8080, so
// every browser call here is cross-origin.
const playerOrigin = "http://localhost:5173"

func playerCORSConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins: playerOrigin,
		AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowedHeaders: "Content-Type",
		MaxAge:         86400,
	}
}

func TestCORS_PreflightAnsweredWithoutHandler(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for preflight")
	})

	wrapped := CORS(playerCORSConfig())(handler)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/subtitles", nil)
	req.Header.Set("Origin", playerOrigin)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != playerOrigin {
		t.Errorf("Allow-Origin: got %q, want %q", got, playerOrigin)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET,POST,PATCH,DELETE,OPTIONS" {
		t.Errorf("Allow-Methods: got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
		t.Errorf("Allow-Headers: got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Max-Age"); got != "86400" {
		t.Errorf("Max-Age: got %q", got)
	}
}

func TestCORS_AllowedOriginEchoed(t *testing.T) {
	cfg := playerCORSConfig()
	cfg.AllowedOrigins = playerOrigin + " , http://localhost:4173"
	cfg.AllowCredentials = true

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	wrapped := CORS(cfg)(handler)

	// The second configured origin, with the config value spaced sloppily.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/words", nil)
	req.Header.Set("Origin", "http://localhost:4173")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to be called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:4173" {
		t.Errorf("Allow-Origin: got %q, want %q", got, "http://localhost:4173")
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials: got %q, want true", got)
	}
}

func TestCORS_UnknownOriginGetsNoHeader(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	wrapped := CORS(playerCORSConfig())(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/words", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	// The request still reaches the handler; the browser enforces the miss.
	if !called {
		t.Error("expected handler to be called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no Allow-Origin header, got %q", got)
	}
}

func TestCORS_WildcardEchoesCaller(t *testing.T) {
	cfg := playerCORSConfig()
	cfg.AllowedOrigins = "*"

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := CORS(cfg)(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export", nil)
	req.Header.Set("Origin", "http://192.168.1.20:5173")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://192.168.1.20:5173" {
		t.Errorf("Allow-Origin: got %q, want the caller's origin", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("expected no Allow-Credentials header, got %q", got)
	}
}
