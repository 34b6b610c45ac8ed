package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"userservice/internal/metrics"
)

// Metrics records request counts and latency per route pattern.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// Use the route pattern, not the raw path, to keep label
			// cardinality bounded.
			endpoint := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && len(rctx.RoutePatterns) > 0 {
				endpoint = rctx.RoutePatterns[len(rctx.RoutePatterns)-1]
			}

			metrics.RecordHTTPRequest(r.Method, endpoint, ww.Status(), time.Since(start))
		})
	}
}
