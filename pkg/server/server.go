// Package server exposes the summarizer over HTTP: POST /summarize plus
// health and metrics endpoints.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/config"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/observability"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/summarizer"
)

// SummaryProvider is the service surface the server depends on.
// *service.Service satisfies it.
type SummaryProvider interface {
	Summarize(ctx context.Context, githubURL string) (*summarizer.Summary, error)
}

// Server is the HTTP surface.
type Server struct {
	httpSrv         *http.Server
	svc             SummaryProvider
	metrics         *observability.Metrics
	logger          observability.Logger
	shutdownTimeout time.Duration
}

// New builds the server with its routes and timeouts.
func New(svc SummaryProvider, metrics *observability.Metrics, logger observability.Logger, cfg config.ServerConfig) *Server {
	s := &Server{
		svc:             svc,
		metrics:         metrics,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	s.httpSrv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withRequestLogging(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler exposes the configured handler chain, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", observability.String("addr", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}
