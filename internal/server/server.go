// Package server exposes the calculation job API polled by the UI:
// submit a product calculation, poll its status, download the PDF
// report once completed.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/AvallenSolutions/lca-engine/internal/jobs"
)

// Server wraps the HTTP API over the job store.
type Server struct {
	store  *jobs.Store
	logger zerolog.Logger
	http   *http.Server
}

// New creates the API server listening on addr.
func New(addr string, store *jobs.Store, logger zerolog.Logger) *Server {
	s := &Server{
		store:  store,
		logger: logger,
	}

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/calculations", s.handleCreateCalculation)
	mux.HandleFunc("GET /api/calculations", s.handleListCalculations)
	mux.HandleFunc("GET /api/calculations/{id}", s.handleGetCalculation)
	mux.HandleFunc("GET /api/calculations/{id}/report", s.handleCalculationReport)
	return s.logRequests(mux)
}

// Handler returns the full request handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe serves until the listener fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP API listening")
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// logRequests emits one structured log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
