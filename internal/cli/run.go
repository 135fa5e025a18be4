package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/labyrinth/internal/logging"
	"github.com/aretw0/labyrinth/internal/presentation/tui"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/word"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Options

	// Word is an inline word, e.g. "c,d,p". It takes precedence over File.
	Word string
	// File is read for the word. "-" reads In.
	File string
	// JSON prints the run record instead of the transcript.
	JSON bool
	// Report prints a rendered markdown summary after the transcript.
	Report bool

	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger
}

// Execute reads the word, runs it and prints the transcript:
// the initial state, one line per transition and the verdict.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(logging.LevelFor(opts.Debug))
	}

	w, err := resolveWord(opts)
	if err != nil {
		return err
	}

	printer := tui.NewPrinter(opts.Out)
	var steps []domain.StepEvent
	record := domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) { steps = append(steps, *e) },
		OnHalt: func(e *domain.StepEvent) { steps = append(steps, *e) },
	}

	hooks := []domain.LifecycleHooks{record}
	if !opts.JSON {
		hooks = append(hooks, transcriptHooks(printer))
	}

	engine, err := NewEngine(ctx, opts.Options, logger, hooks...)
	if err != nil {
		return err
	}
	a := engine.Automaton()

	if !opts.JSON {
		printer.Initial(a.States().Name(a.Initial()))
	}

	res, err := engine.Run(ctx, w)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	if opts.JSON {
		enc := json.NewEncoder(opts.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Record)
	}

	printer.Outcome(res.Outcome)

	if opts.Report {
		render, err := tui.NewRenderer(opts.Out)
		if err != nil {
			return err
		}
		out, err := render(tui.RunReport(a, w, steps, res.Outcome))
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprint(opts.Out, out)
	}
	return nil
}

func transcriptHooks(p *tui.Printer) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) {
			p.Edge(fmt.Sprintf("δ(%s, %s) => %s", e.FromName, e.SymbolName, e.ToName))
		},
		OnHalt: func(e *domain.StepEvent) {
			p.Halt(fmt.Sprintf("δ(%s, %s) => %s", e.FromName, e.SymbolName, e.ToName))
		},
	}
}

func resolveWord(opts RunOptions) ([]string, error) {
	switch {
	case opts.Word != "":
		return word.Split(opts.Word), nil
	case opts.File == "-":
		return word.Read(opts.In)
	case opts.File != "":
		return word.ReadFile(opts.File)
	default:
		return word.Default(), nil
	}
}
