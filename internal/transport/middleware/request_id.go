package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/pkg/ctxutil"
)

// RequestIDHeader carries the request id to and from clients.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that tags each request with an id, either the
// caller's X-Request-Id header or a fresh UUID, and echoes it back.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
