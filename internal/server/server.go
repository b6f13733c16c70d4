// Package server exposes liveness, readiness and Prometheus metrics over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/BlumBot_Go/internal/metrics"
)

// Server is the health and metrics endpoint of the bot
type Server struct {
	httpServer *http.Server
}

// NewServer creates a server listening on addr
func NewServer(addr string, checker ReadinessChecker) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(checker),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewRouter builds the route table
func NewRouter(checker ReadinessChecker) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(PathHealthz, HandleHealthz())
	r.Get(PathReadyz, HandleReadyz(checker))
	r.Handle(PathMetrics, promhttp.Handler())

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Scrapes and probes are too frequent to log
		if strings.HasPrefix(r.URL.Path, PathHealthz) ||
			strings.HasPrefix(r.URL.Path, PathReadyz) ||
			strings.HasPrefix(r.URL.Path, PathMetrics) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		slog.Default().Debug(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration", time.Since(start))
	})
}

// Start blocks serving until Stop is called. A clean stop returns nil.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Default().Info(LogMsgServerStopped)
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
