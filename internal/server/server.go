// Package server exposes the logic engine over HTTP for read-only previews.
// Every document received is upgraded and sanitized before it is evaluated.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deploymenttheory/go-form-composer/internal/evaluation"
	"github.com/deploymenttheory/go-form-composer/internal/logger"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 4 << 20

// Options configures the HTTP server
type Options struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server serves previews of process documents
type Server struct {
	router    chi.Router
	evaluator *evaluation.Evaluator
}

// NewServer builds a server evaluating with evaluator. A nil evaluator uses
// the wall clock.
func NewServer(evaluator *evaluation.Evaluator) *Server {
	if evaluator == nil {
		evaluator = &evaluation.Evaluator{}
	}
	srv := &Server{
		router:    chi.NewRouter(),
		evaluator: evaluator,
	}
	srv.routes()
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(requestLogger)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/validation-patterns", s.handleValidationPatterns)
		r.Post("/evaluate", s.handleEvaluate)
		r.Post("/summary", s.handleSummary)
		r.Post("/upgrade", s.handleUpgrade)
	})
}

// requestLogger logs every request at debug level once it completes
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logger.WithFields(map[string]interface{}{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": middleware.GetReqID(r.Context()),
		}).Debugw("request", "status", ww.Status(), "duration", time.Since(start).String())
	})
}

// Run serves on opts.Address until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, opts Options) error {
	httpServer := &http.Server{
		Addr:         opts.Address,
		Handler:      s,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.LogInfo("Preview server listening", map[string]interface{}{
			"address": opts.Address,
		})
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("preview server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.LogInfo("Preview server shutting down", nil)
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("preview server shutdown: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.LogError("request failed", err, map[string]interface{}{"status": status})
	} else {
		logger.LogWarn("request failed", map[string]interface{}{"status": status, "error": err.Error()})
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
