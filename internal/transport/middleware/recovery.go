package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/ofirgaash1/engsub/pkg/ctxutil"
)

// Recovery converts a handler panic into a plain 500 so one malformed
// subtitle upload cannot take the whole player backend down. The panic value,
// stack, and request id are logged for the bug report.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
