package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// Engine executes words against an immutable automaton.
// It is stateless: every Read starts an independent Runner.
type Engine struct {
	automaton *domain.Automaton
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	strict    bool
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks called on every step.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger used for edge diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStrictStates toggles the check that every target belongs to the
// declared state set (default: on).
func WithStrictStates(strict bool) EngineOption {
	return func(e *Engine) {
		e.strict = strict
	}
}

// NewEngine creates an engine for a.
func NewEngine(a *domain.Automaton, opts ...EngineOption) *Engine {
	e := &Engine{
		automaton: a,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		strict:    true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Automaton returns the automaton this engine runs.
func (e *Engine) Automaton() *domain.Automaton {
	return e.automaton
}

// Read starts a lazy run over word. Nothing is consumed until Next is called.
func (e *Engine) Read(word []string) *Runner {
	return &Runner{
		engine:  e,
		word:    word,
		current: e.automaton.Initial(),
		last:    domain.NoState,
	}
}

// Result is a drained run.
type Result struct {
	Trace   []domain.State
	Halted  bool
	Outcome domain.Outcome
}

// Last returns the final trace element and false for an empty trace.
func (r *Result) Last() (domain.State, bool) {
	if len(r.Trace) == 0 {
		return domain.NoState, false
	}
	return r.Trace[len(r.Trace)-1], true
}

// Run reads word to the end and classifies it.
// A fatal error (unrecognized symbol, invalid target) discards the partial trace.
func (e *Engine) Run(word []string) (*Result, error) {
	r := e.Read(word)
	trace := make([]domain.State, 0, len(word))
	for r.Next() {
		trace = append(trace, r.State())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return &Result{
		Trace:   trace,
		Halted:  r.Halted(),
		Outcome: r.Outcome(),
	}, nil
}
