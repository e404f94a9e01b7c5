package middleware

import (
	"net/http"
	"time"

	"campusevents/internal/monitoring"
)

// MetricsMiddleware records request counters and latency histograms per route
// pattern. Runs inside LoggingMiddleware so the pattern set by the mux is
// already resolved.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		monitoring.TrackHTTPRequest(r.Method, route, wrapped.status, time.Since(start))
	})
}
