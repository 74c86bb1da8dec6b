// Package server exposes the viewport transform over HTTP.
//
// Routes:
//
//	POST /v1/transform  compute one transform
//	GET  /healthz       liveness check
//	GET  /version       build information
//
// Request bodies are JSON:
//
//	{
//	  "view_box": {"x": 0, "y": 0, "width": 100, "height": 50},
//	  "element":  {"x": 0, "y": 0, "width": 200, "height": 200},
//	  "align": "xMidYMid",
//	  "fit": "meet",
//	  "from_symbol": false
//	}
//
// align and fit default to "xMidYMid" and "meet". Set "strict": true to reject
// unknown alignment tokens and non-positive sizes instead of computing with them.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/viewport/pkg/buildinfo"
	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/geom"
	"github.com/matzehuels/viewport/pkg/observability"
	"github.com/matzehuels/viewport/pkg/viewport"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// Server serves the transform API.
type Server struct {
	logger *log.Logger
	router chi.Router
}

// New creates a Server that logs through logger. A nil logger uses log.Default().
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, buildinfo.Get())
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/transform", s.handleTransform)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully, waiting up to shutdownTimeout for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// =============================================================================
// Transform Endpoint
// =============================================================================

type transformRequest struct {
	ViewBox    *geom.Rect `json:"view_box"`
	Element    *geom.Rect `json:"element"`
	Align      string     `json:"align"`
	Fit        string     `json:"fit"`
	FromSymbol bool       `json:"from_symbol"`
	Strict     bool       `json:"strict"`
}

type transformResponse struct {
	Matrix geom.Matrix `json:"matrix"`
	SVG    string      `json:"svg"`
	Finite bool        `json:"finite"`
}

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := decodeTransform(w, r)
	if err != nil {
		observability.Transform().OnRejected(ctx, "http", err)
		s.writeError(w, r, err)
		return
	}

	start := time.Now()
	m := p.Transform()
	observability.Transform().OnTransform(ctx, "http", p, m, time.Since(start))

	resp := transformResponse{Finite: m.IsFinite(), SVG: m.SVG()}
	if resp.Finite {
		resp.Matrix = m
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeTransform(w http.ResponseWriter, r *http.Request) (viewport.Params, error) {
	var req transformRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return viewport.Params{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body")
	}
	if req.ViewBox == nil || req.Element == nil {
		return viewport.Params{}, errors.New(errors.ErrCodeInvalidInput, "view_box and element are required")
	}

	p := viewport.Params{
		ViewBox:    *req.ViewBox,
		Element:    *req.Element,
		Align:      viewport.DefaultAlign,
		Fit:        viewport.Meet,
		FromSymbol: req.FromSymbol,
	}
	if req.Align != "" {
		p.Align = viewport.Align(req.Align)
	}
	if req.Fit != "" {
		fit, err := errors.ValidateFit(req.Fit)
		if err != nil {
			return viewport.Params{}, err
		}
		p.Fit = fit
	}
	if req.Strict {
		if err := errors.ValidateParams(p); err != nil {
			return viewport.Params{}, err
		}
	}
	return p, nil
}

// =============================================================================
// Responses
// =============================================================================

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := http.StatusBadRequest
	if code == errors.ErrCodeInternal {
		status = http.StatusInternalServerError
	}
	s.logger.Debug("Request rejected", "request_id", RequestIDFromContext(r.Context()), "code", code, "err", err)
	writeJSON(w, status, errorResponse{Code: code, Error: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
