package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/observability"
)

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLogging tags every request with a UUID and logs its outcome.
func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			observability.String("request_id", requestID),
			observability.String("method", r.Method),
			observability.String("path", r.URL.Path),
			observability.Int("status", rec.status),
			observability.Duration("duration", time.Since(start)))
	})
}
