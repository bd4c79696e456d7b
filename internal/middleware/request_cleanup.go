package middleware

import (
	"io"
	"net/http"
)

// MaxRequestBodyBytes is far above any tracker entry or profile update.
const MaxRequestBodyBytes = 64 << 10

// LimitAndDrainRequest caps the request body at maxBytes, then drains what the
// handler left unread and closes it. A handler reading past the cap gets an error.
func LimitAndDrainRequest(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)

			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
