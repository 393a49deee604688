package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain folds several middleware into one, applied in the order given:
// Chain(a, b)(h) is a(b(h)), so the first argument runs outermost. The
// server chains request-id first so every later stage, the request logger
// included, already sees the id in the context.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
