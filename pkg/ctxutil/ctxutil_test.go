package ctxutil

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "upload-42")
	if got := RequestIDFromCtx(ctx); got != "upload-42" {
		t.Fatalf("expected upload-42, got %q", got)
	}
}

func TestRequestIDFromCtx_Absent(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}

	// A non-string value under the same key is treated as absent.
	ctx := context.WithValue(context.Background(), requestIDKey, 42)
	if got := RequestIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string for non-string value, got %q", got)
	}
}
