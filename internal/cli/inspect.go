package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/labyrinth/pkg/schema"
)

// Graph writes the Mermaid flowchart of the selected automaton.
func Graph(ctx context.Context, opts Options, logger *slog.Logger, w io.Writer) error {
	engine, err := NewEngine(ctx, opts, logger)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, engine.Graph(nil))
	return err
}

// Validate writes the reachability report of the selected automaton.
// It fails when no accepting state can be reached.
func Validate(ctx context.Context, opts Options, logger *slog.Logger, w io.Writer) error {
	engine, err := NewEngine(ctx, opts, logger)
	if err != nil {
		return err
	}

	report, err := engine.Validate()
	if report != nil {
		fmt.Fprintf(w, "%s: %d states, %d symbols, %d reachable\n",
			report.Automaton, report.States, report.Symbols, len(report.Reachable))
		if len(report.Unreachable) > 0 {
			fmt.Fprintf(w, "unreachable: %v\n", report.Unreachable)
		}
		if len(report.DeadEnds) > 0 {
			fmt.Fprintf(w, "dead ends: %v\n", report.DeadEnds)
		}
		if len(report.Partial) > 0 {
			fmt.Fprintf(w, "partial: %v\n", report.Partial)
		}
		if len(report.ReachableFinals) > 0 {
			fmt.Fprintf(w, "reachable finals: %v\n", report.ReachableFinals)
		}
	}
	return err
}

// Export writes the selected automaton as a definition file.
func Export(ctx context.Context, opts Options, logger *slog.Logger, format string, w io.Writer) error {
	f, err := schema.ParseFormat(format)
	if err != nil {
		return err
	}

	engine, err := NewEngine(ctx, opts, logger)
	if err != nil {
		return err
	}
	def, err := engine.Definition()
	if err != nil {
		return err
	}
	data, err := schema.Marshal(def, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
