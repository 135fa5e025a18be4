package labyrinth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/labyrinth/internal/presentation/graph"
	"github.com/aretw0/labyrinth/internal/runtime"
	"github.com/aretw0/labyrinth/internal/validator"
	"github.com/aretw0/labyrinth/pkg/cave"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/ports"
	"github.com/aretw0/labyrinth/pkg/schema"
	"github.com/google/uuid"
)

// Runner is the lazy, step-by-step reader returned by Engine.Read.
type Runner = runtime.Runner

// Engine is the high-level entry point for the labyrinth library.
// It wraps the internal runtime and adds run records, persistence and
// introspection on top of it.
type Engine struct {
	runtime   *runtime.Engine
	automaton *domain.Automaton
	store     ports.RunStore
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	strict    bool
	now       func() time.Time
	Name      string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore persists every completed Run in store.
func WithStore(store ports.RunStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithStrictStates toggles the target membership check (default: on).
func WithStrictStates(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithClock overrides the time source used for run records.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New wraps an automaton in an Engine.
func New(a *domain.Automaton, opts ...Option) (*Engine, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil automaton", domain.ErrInvalidAutomaton)
	}

	eng := &Engine{
		automaton: a,
		strict:    true,
		now:       time.Now,
		Name:      a.Name(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("automaton", eng.Name)

	eng.runtime = runtime.NewEngine(a,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithStrictStates(eng.strict),
	)
	return eng, nil
}

// NewClassic returns an engine for the built-in 3x3 wumpus cave.
func NewClassic(opts ...Option) (*Engine, error) {
	a, err := cave.Classic.Compile()
	if err != nil {
		return nil, err
	}
	return New(a, opts...)
}

// Load builds an engine from a YAML or JSON definition file.
func Load(path string, opts ...Option) (*Engine, error) {
	def, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromDefinition(def, opts...)
}

// FromDefinition builds an engine from a parsed definition.
func FromDefinition(def *schema.Definition, opts ...Option) (*Engine, error) {
	a, err := def.Build()
	if err != nil {
		return nil, err
	}
	return New(a, opts...)
}

// FromLibrary builds an engine for the maze registered under name.
func FromLibrary(ctx context.Context, lib ports.MazeLibrary, name string, opts ...Option) (*Engine, error) {
	def, err := lib.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return FromDefinition(def, opts...)
}

// Automaton returns the automaton runs are evaluated against.
func (e *Engine) Automaton() *domain.Automaton {
	return e.automaton
}

// Read starts a lazy run. Nothing is recorded or persisted for it.
func (e *Engine) Read(word []string) *Runner {
	return e.runtime.Read(word)
}

// Result is a completed run.
type Result struct {
	ID string
	runtime.Result

	// Record is the persisted form of the run, built once when the run completes.
	Record *domain.RunRecord
}

// Run reads word to the end, classifies it and, when a store is
// configured, persists the record.
func (e *Engine) Run(ctx context.Context, word []string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := e.runtime.Run(word)
	if err != nil {
		return nil, err
	}

	result := &Result{ID: uuid.NewString(), Result: *res}
	result.Record = e.record(word, result)
	if e.store != nil {
		if err := e.store.Save(ctx, result.Record); err != nil {
			return nil, fmt.Errorf("failed to save run: %w", err)
		}
	}
	return result, nil
}

// Simulate is Run returning the persisted form of the result.
func (e *Engine) Simulate(ctx context.Context, word []string) (*domain.RunRecord, error) {
	res, err := e.Run(ctx, word)
	if err != nil {
		return nil, err
	}
	return res.Record, nil
}

// record converts a result into its persisted form, with state names
// instead of indices.
func (e *Engine) record(word []string, res *Result) *domain.RunRecord {
	trace := make([]string, len(res.Trace))
	for i, s := range res.Trace {
		trace[i] = e.automaton.States().Name(s)
	}
	return &domain.RunRecord{
		ID:        res.ID,
		Automaton: e.Name,
		Word:      append([]string{}, word...),
		Trace:     trace,
		Halted:    res.Halted,
		Outcome:   res.Outcome,
		CreatedAt: e.now().UTC(),
	}
}

// GetRun loads a stored run.
func (e *Engine) GetRun(ctx context.Context, id string) (*domain.RunRecord, error) {
	if e.store == nil {
		return nil, fmt.Errorf("%w: no run store configured", domain.ErrRunNotFound)
	}
	return e.store.Load(ctx, id)
}

// ListRuns returns stored runs, oldest first. Without a store the list is empty.
func (e *Engine) ListRuns(ctx context.Context) ([]*domain.RunRecord, error) {
	if e.store == nil {
		return []*domain.RunRecord{}, nil
	}
	ids, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}
	runs := make([]*domain.RunRecord, 0, len(ids))
	for _, id := range ids {
		run, err := e.store.Load(ctx, id)
		if err != nil {
			// Expired between List and Load.
			e.logger.Debug("skipping run", "id", id, "error", err)
			continue
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// Definition returns the serializable form of the automaton.
func (e *Engine) Definition() (*schema.Definition, error) {
	return schema.FromAutomaton(e.automaton)
}

// Validate reports reachability problems of the automaton.
func (e *Engine) Validate() (*validator.Report, error) {
	return validator.Validate(e.automaton)
}

// Graph renders the automaton as a Mermaid flowchart. A non-empty trace
// highlights the visited states.
func (e *Engine) Graph(trace []string) string {
	var overlay *graph.GraphOverlay
	if len(trace) > 0 {
		overlay = graph.OverlayFromTrace(trace)
	}
	return graph.GenerateMermaid(e.automaton, overlay)
}
