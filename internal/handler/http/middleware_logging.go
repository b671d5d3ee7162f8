package http

import (
	"net/http"
	"time"

	"github.com/sgalab/sga-server/internal/logger"
)

// withLogging emits one access-log line per request after the downstream
// handler returns. Error responses are raised to warn level so denied and
// failed requests stand out when scanning logs next to the audit trail.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := log.Info()
		if lw.status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
