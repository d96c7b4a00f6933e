package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/nexus-missions/pkg/ctxutil"
)

// RequestIDHeader is read from the request and echoed on the response.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLength caps client-supplied ids; longer ones are replaced.
const maxRequestIDLength = 128

// RequestID reuses the caller's X-Request-Id or generates a new UUID.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
