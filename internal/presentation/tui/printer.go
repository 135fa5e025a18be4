package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/muesli/termenv"
)

// Printer writes the line-per-step run transcript.
type Printer struct {
	w   io.Writer
	out *termenv.Output
}

// NewPrinter creates a printer on w. Colors are dropped when w is not a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, out: newOutput(w)}
}

// Initial prints the starting state.
func (p *Printer) Initial(name string) {
	fmt.Fprintf(p.w, "Initial state => %s\n", p.out.String(name).Bold())
}

// Edge prints one transition, e.g. "δ(A11, Up) => A21".
func (p *Printer) Edge(edge string) {
	fmt.Fprintln(p.w, edge)
}

// Halt prints the transition that stopped the run.
func (p *Printer) Halt(edge string) {
	fmt.Fprintln(p.w, p.out.String(edge).Foreground(p.out.Color("#f59e0b")))
}

// Outcome prints the classification message.
func (p *Printer) Outcome(o domain.Outcome) {
	color := "#ef4444"
	switch o {
	case domain.OutcomeAccepted:
		color = "#22c55e"
	case domain.OutcomeIdle, domain.OutcomeReturned:
		color = "#3b82f6"
	}
	fmt.Fprintln(p.w, p.out.String(o.Message()).Foreground(p.out.Color(color)).Bold())
}
