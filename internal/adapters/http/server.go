package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/dial"
	"github.com/aretw0/dial/pkg/domain"
	"github.com/aretw0/dial/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// MaxBodyBytes bounds request bodies.
	MaxBodyBytes = 1 << 20
	// MaxCommands bounds the number of commands in one simulation request.
	MaxCommands = 100_000
)

// SimulateRequest is the body of POST /simulate.
// Perimeter and Start fall back to the server defaults when omitted.
type SimulateRequest struct {
	Perimeter *int     `json:"perimeter,omitempty"`
	Start     *int     `json:"start,omitempty"`
	Commands  []string `json:"commands"`
}

// StepResponse is one applied command.
type StepResponse struct {
	Line int `json:"line"`
	domain.Step
}

// SimulateResponse is the body returned by POST /simulate.
type SimulateResponse struct {
	*runner.Report
	Steps []StepResponse `json:"steps"`
}

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Token string `json:"token"`
}

// ErrorResponse is returned with every 4xx/5xx status.
type ErrorResponse struct {
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"`
}

// Server serves dial simulations over HTTP. Every request gets its own dial.
type Server struct {
	Perimeter int
	Start     int
	Hooks     domain.LifecycleHooks
	Logger    *slog.Logger
	Gatherer  prometheus.Gatherer
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithDefaults sets the dial used when a request omits perimeter or start.
func WithDefaults(perimeter, start int) Option {
	return func(s *Server) {
		s.Perimeter = perimeter
		s.Start = start
	}
}

// WithLifecycleHooks registers observability hooks for every simulation.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.Hooks = hooks
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithGatherer exposes the given registry on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// NewHandler creates a new HTTP handler serving the dial API.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		Perimeter: dial.DefaultPerimeter,
		Start:     dial.DefaultStart,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.Gatherer == nil {
		s.Gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	r.Post("/simulate", s.Simulate)
	r.Post("/parse", s.Parse)

	return r
}

// Simulate handles the POST /simulate request.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var body SimulateRequest
	if err := decode(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", 0)
		return
	}
	if len(body.Commands) > MaxCommands {
		writeError(w, http.StatusRequestEntityTooLarge, "too many commands", 0)
		return
	}

	perimeter, start := s.Perimeter, s.Start
	if body.Perimeter != nil {
		perimeter = *body.Perimeter
	}
	if body.Start != nil {
		start = *body.Start
	}

	d, err := domain.NewDial(perimeter, start)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), 0)
		return
	}

	steps := &stepCollector{steps: make([]StepResponse, 0, len(body.Commands))}
	run := runner.NewRunner(
		runner.WithLogger(s.Logger),
		runner.WithHandler(steps),
		runner.WithLifecycleHooks(s.Hooks),
	)

	report, err := run.RunTokens(r.Context(), d, body.Commands)
	if err != nil {
		var lineErr *runner.LineError
		if errors.As(err, &lineErr) {
			writeError(w, http.StatusBadRequest, err.Error(), lineErr.Line)
			return
		}
		s.Logger.Error("simulation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "simulation failed", 0)
		return
	}

	writeJSON(w, http.StatusOK, SimulateResponse{Report: report, Steps: steps.steps})
}

// Parse handles the POST /parse request.
func (s *Server) Parse(w http.ResponseWriter, r *http.Request) {
	var body ParseRequest
	if err := decode(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", 0)
		return
	}

	cmd, err := domain.ParseCommand(body.Token)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), 0)
		return
	}
	writeJSON(w, http.StatusOK, cmd)
}

type stepCollector struct {
	steps []StepResponse
}

func (c *stepCollector) Step(_ context.Context, line int, step domain.Step) error {
	c.steps = append(c.steps, StepResponse{Line: line, Step: step})
	return nil
}

func (c *stepCollector) Summary(context.Context, *runner.Report) error {
	return nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, line int) {
	writeJSON(w, status, ErrorResponse{Error: msg, Line: line})
}
