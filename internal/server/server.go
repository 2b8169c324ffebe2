// Package server exposes the comparison pipeline over HTTP: one stateless
// endpoint that integrates two runs and returns the composed views.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/san-kum/butterfly/internal/config"
	"github.com/san-kum/butterfly/internal/lorenz"
	"github.com/san-kum/butterfly/internal/solver"
	"github.com/san-kum/butterfly/internal/view"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server wraps an http.Server with the pipeline routes mounted.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

func New(addr string, logger *log.Logger) *Server {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/v1/views", s.handleViews)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	return s
}

// ListenAndServe blocks until the context is canceled, then drains
// in-flight requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpServer.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutCtx)
	}
}

// requestID tags each request with a fresh UUID, echoed in the response
// header and in every log line for the request.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		logger := s.logger.With("request_id", id)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status":"ok"}`)
}

// ViewsRequest is the wire form of one generate request. Zero values fall
// back to the dashboard defaults, so `{}` is a valid body.
type ViewsRequest struct {
	PathA   *config.Run   `json:"path_a,omitempty"`
	PathB   *config.Run   `json:"path_b,omitempty"`
	T0      *float64      `json:"t0,omitempty"`
	Tf      *float64      `json:"tf,omitempty"`
	Dt      *float64      `json:"dt,omitempty"`
	Strides *view.Strides `json:"strides,omitempty"`
}

// ViewsResponse carries the composed views plus the grid size they were
// sampled on.
type ViewsResponse struct {
	Samples int         `json:"samples"`
	Views   *view.Views `json:"views"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (r ViewsRequest) config() *config.Config {
	cfg := config.DefaultConfig()
	if r.PathA != nil {
		cfg.PathA = *r.PathA
	}
	if r.PathB != nil {
		cfg.PathB = *r.PathB
	}
	if r.T0 != nil {
		cfg.T0 = *r.T0
	}
	if r.Tf != nil {
		cfg.Tf = *r.Tf
	}
	if r.Dt != nil {
		cfg.Dt = *r.Dt
	}
	if r.Strides != nil {
		cfg.Strides = *r.Strides
	}
	return cfg
}

func (s *Server) handleViews(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r.Context())

	var req ViewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	cfg := req.config()
	start := time.Now()
	views, n, err := Generate(cfg)
	if err != nil {
		logger.Warn("generate failed", "err", err)
		writeError(w, statusFor(err), err)
		return
	}
	logger.Info("views composed", "samples", n, "elapsed", time.Since(start).Round(time.Millisecond))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ViewsResponse{Samples: n, Views: views}); err != nil {
		logger.Error("encode response", "err", err)
	}
}

// Generate runs the whole pipeline for one configuration: integrate both
// paths on the shared grid and compose the three views. Each call works
// from its inputs alone.
func Generate(cfg *config.Config) (*view.Views, int, error) {
	grid := cfg.Grid()
	a, err := solver.Integrate(cfg.PathA.Params(), cfg.PathA.Initial(), grid)
	if err != nil {
		return nil, 0, fmt.Errorf("path A: %w", err)
	}
	b, err := solver.Integrate(cfg.PathB.Params(), cfg.PathB.Initial(), grid)
	if err != nil {
		return nil, 0, fmt.Errorf("path B: %w", err)
	}
	views, err := view.Compose(a, b, cfg.Strides)
	if err != nil {
		return nil, 0, err
	}
	return views, a.Len(), nil
}

// statusFor maps pipeline errors onto HTTP statuses: bad input is the
// caller's fault, numerical blowup is the data's.
func statusFor(err error) int {
	switch {
	case errors.Is(err, lorenz.ErrInvalidTimeGrid), errors.Is(err, lorenz.ErrInvalidStride):
		return http.StatusBadRequest
	case errors.Is(err, lorenz.ErrUnstable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error()}) //nolint:errcheck
}
