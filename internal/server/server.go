// Package server serves the calculator page, its JSON API and the
// operational endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rpgo/acos-calculator/internal/config"
	"github.com/rpgo/acos-calculator/internal/domain"
)

// Server wires handlers, middleware and the listener together
type Server struct {
	cfg      *config.Configuration
	variants map[string]domain.Variant
	logger   *slog.Logger
	metrics  *Metrics
	limiter  *RateLimiter
	handler  http.Handler
}

// New builds a server from a validated configuration
func New(cfg *config.Configuration, logger *slog.Logger) (*Server, error) {
	variants, err := cfg.BuildVariants()
	if err != nil {
		return nil, fmt.Errorf("failed to build variants: %w", err)
	}
	if _, ok := variants[cfg.DefaultVariant]; !ok {
		return nil, fmt.Errorf("default variant %q is not defined", cfg.DefaultVariant)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:      cfg,
		variants: variants,
		logger:   logger,
		metrics:  NewMetrics(),
	}
	if cfg.RateLimit.Capacity > 0 {
		s.limiter = NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	}
	s.handler = s.routes()
	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	s.handle(mux, "GET /{$}", "page", http.HandlerFunc(s.handlePage), false)
	s.handle(mux, "POST /{$}", "submit", http.HandlerFunc(s.handleSubmit), true)
	s.handle(mux, "POST /api/acos", "api_acos", http.HandlerFunc(s.handleCalculate), true)
	s.handle(mux, "GET /api/variants", "api_variants", http.HandlerFunc(s.handleVariants), false)
	s.handle(mux, "GET /healthz", "healthz", http.HandlerFunc(s.handleHealth), false)
	mux.Handle("GET /metrics", s.metrics.Handler())

	var h http.Handler = mux
	h = recoverMiddleware(s.logger, h)
	h = loggingMiddleware(s.logger, h)
	h = requestIDMiddleware(h)
	return h
}

func (s *Server) handle(mux *http.ServeMux, pattern, route string, h http.Handler, limited bool) {
	if limited && s.limiter != nil {
		h = RateLimitMiddleware(s.limiter, h)
	}
	mux.Handle(pattern, s.metrics.Instrument(route, h))
}

// Handler returns the root handler, wrapped for cleartext HTTP/2 when enabled
func (s *Server) Handler() http.Handler {
	if s.cfg.Server.H2C {
		return h2c.NewHandler(s.handler, &http2.Server{})
	}
	return s.handler
}

// HTTPServer returns an http.Server configured from the server settings
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
}

// Run listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	defer s.Close()
	srv := s.HTTPServer()

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", "address", srv.Addr, "h2c", s.cfg.Server.H2C, "default_variant", s.cfg.DefaultVariant)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}
	s.logger.Info("Server exited")
	return nil
}

// Close releases background resources
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// variant resolves a variant name, falling back to the default
func (s *Server) variant(name string) domain.Variant {
	if v, ok := s.variants[name]; ok {
		return v
	}
	return s.variants[s.cfg.DefaultVariant]
}
