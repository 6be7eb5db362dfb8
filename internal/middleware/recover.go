package middleware

import (
	"net/http"
	"runtime/debug"

	"liftlens/internal/logging"
)

// Recover returns middleware that converts handler panics into 500 responses.
// http.ErrAbortHandler is re-raised so the server can abort the connection
// the way net/http expects.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logging.Error("panic recovered in %s: %v\n%s", r.URL.Path, rec, debug.Stack())
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
