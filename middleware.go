package envkit

import "net/http"

// Middleware returns a middleware that attaches the given deployment tag to
// all request contexts, making it available to the whole request-handling
// pipeline without explicit parameter passing.
func Middleware(tag Tag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
