// Package server exposes the scoring engine over HTTP. It is thin
// glue: every request body becomes a plain string handed to the core,
// and the response is the (score, suggestions) tuple the core returns.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/pitchspark/pitchspark/internal/ai"
	"go.uber.org/zap"
)

const (
	defaultMaxBodyBytes = 10 << 20 // uploads are small resumes
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 60 * time.Second
)

// Config holds dependencies and settings for the HTTP server.
type Config struct {
	Address string
	Logger  *zap.Logger
	Version string

	// Reviewer is optional; when nil the AI critique endpoints degrade
	// to score-only responses.
	Reviewer ai.Reviewer

	MaxBodyBytes int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the PitchSpark HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	logger     *zap.Logger
}

// New creates a server with all routes configured.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}

	h := &handlers{
		reviewer:     cfg.Reviewer,
		logger:       cfg.Logger,
		maxBodyBytes: cfg.MaxBodyBytes,
		version:      cfg.Version,
	}

	mux := http.NewServeMux()
	mux.Handle("POST /v1/analyze", http.HandlerFunc(h.handleAnalyze))
	mux.Handle("POST /v1/analyze/pdf", http.HandlerFunc(h.handleAnalyzePDF))
	mux.Handle("GET /healthz", http.HandlerFunc(h.handleHealth))

	handler := requestLogger(cfg.Logger, mux)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		handler: handler,
		logger:  cfg.Logger,
	}
}

// Handler returns the root HTTP handler for use in tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("address", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
