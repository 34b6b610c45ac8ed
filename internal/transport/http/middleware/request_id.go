package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appCtx "userservice/internal/pkg/context"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns each request an id, honoring one supplied by the
// client, and echoes it back in the response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)

			ctx := appCtx.WithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
