package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request's trace identifier in both
// directions: incoming values are reused so a front-end proxy can
// correlate its logs with ours, and the final ID is echoed back to the
// caller.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace ID to the request-scoped logger, so every
// log line an answer request produces (linking, fetching, rendering) can
// be grouped by one identifier.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		child := h.logger.GetChildLogger()
		child.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(child.WithContext(r.Context())))
	})
}
