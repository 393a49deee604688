package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/ofirgaash1/engsub/internal/config"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if logger == nil {
		t.Fatal("logger should not be nil")
	}
	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should install the returned logger as the slog default")
	}
}

func TestNewHandler_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(newHandler(&buf, config.LogConfig{Level: tt.level, Format: "json"}))

			logger.Log(context.TODO(), tt.wantSlog, "cue parsed")
			if buf.Len() == 0 {
				t.Errorf("expected output at level %v", tt.wantSlog)
			}

			buf.Reset()
			logger.Log(context.TODO(), tt.wantSlog-1, "should be suppressed")
			if buf.Len() != 0 {
				t.Errorf("level %v should suppress level %v, got: %s",
					tt.wantSlog, tt.wantSlog-1, buf.String())
			}
		})
	}
}

func TestNewHandler_TextAddsSourceJSONDoesNot(t *testing.T) {
	var textBuf, jsonBuf bytes.Buffer

	slog.New(newHandler(&textBuf, config.LogConfig{Level: "info", Format: "text"})).
		Info("subtitle registered")
	slog.New(newHandler(&jsonBuf, config.LogConfig{Level: "info", Format: "json"})).
		Info("subtitle registered")

	if !strings.Contains(textBuf.String(), "source=") {
		t.Error("text format should include source locations")
	}

	var m map[string]any
	if err := json.Unmarshal(jsonBuf.Bytes(), &m); err != nil {
		t.Fatalf("json format should produce valid JSON: %v", err)
	}
	if _, ok := m["source"]; ok {
		t.Error("json format should not include source locations")
	}
}
