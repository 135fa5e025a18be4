package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/labyrinth"
	"github.com/aretw0/labyrinth/internal/presentation/graph"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/ports"
	"github.com/aretw0/labyrinth/pkg/schema"
	"github.com/aretw0/labyrinth/pkg/word"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes a Simulator over a JSON API.
type Server struct {
	Engine   ports.Simulator
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics serves the gatherer's metrics on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// RunRequest is the body of POST /runs. Word wins over Input when both are set.
type RunRequest struct {
	Word  []string `json:"word,omitempty"`
	Input string   `json:"input,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Token string `json:"token,omitempty"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Simulator, opts ...Option) http.Handler {
	server := &Server{
		Engine: engine,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/automaton", server.GetAutomaton)
	r.Get("/automaton/graph", server.GetGraph)
	r.Route("/runs", func(r chi.Router) {
		r.Post("/", server.CreateRun)
		r.Get("/", server.ListRuns)
		r.Get("/{id}", server.GetRun)
	})
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":       "labyrinth-http",
		"version":   strings.TrimSpace(labyrinth.Version),
		"automaton": s.Engine.Automaton().Name(),
	})
}

// GetAutomaton handles GET /automaton.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	def, err := schema.FromAutomaton(s.Engine.Automaton())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, def)
}

// GetGraph handles GET /automaton/graph. With ?run=<id> the run's trace is highlighted.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.GraphOverlay
	if id := r.URL.Query().Get("run"); id != "" {
		run, err := s.Engine.GetRun(r.Context(), id)
		if err != nil {
			s.writeRunError(w, err)
			return
		}
		overlay = graph.OverlayFromTrace(run.Trace)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(s.Engine.Automaton(), overlay))
}

// CreateRun handles POST /runs.
func (s *Server) CreateRun(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid request body"), "")
		s.logger.Warn("CreateRun: invalid request body", "error", err)
		return
	}

	tokens := body.Word
	if tokens == nil {
		tokens = word.Split(body.Input)
	}

	run, err := s.Engine.Simulate(r.Context(), tokens)
	if err != nil {
		var unrec *domain.UnrecognizedSymbolError
		if errors.As(err, &unrec) {
			s.writeError(w, http.StatusUnprocessableEntity, err, unrec.Token)
			return
		}
		s.logger.Error("CreateRun failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err, "")
		return
	}

	w.Header().Set("Location", "/runs/"+run.ID)
	s.writeJSON(w, http.StatusCreated, run)
}

// ListRuns handles GET /runs.
func (s *Server) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.Engine.ListRuns(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err, "")
		return
	}
	s.writeJSON(w, http.StatusOK, runs)
}

// GetRun handles GET /runs/{id}.
func (s *Server) GetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.Engine.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeRunError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

// -- Helpers --

func (s *Server) writeRunError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrRunNotFound) {
		s.writeError(w, http.StatusNotFound, err, "")
		return
	}
	s.writeError(w, http.StatusInternalServerError, err, "")
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error, token string) {
	s.writeJSON(w, status, ErrorResponse{Error: err.Error(), Token: token})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
