package http

import (
	"net/http"
	"time"

	"github.com/jankohoener/asknow/internal/logger"
)

// withLogging emits one access-log line per request on the trace-scoped
// logger. Status and body size come from the responseWriter wrapper, so
// this middleware must sit inside withTraceID but outside the handlers.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
