package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// RunReport builds a markdown summary of a run from its step events.
func RunReport(a *domain.Automaton, word []string, steps []domain.StepEvent, outcome domain.Outcome) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", a.Name())
	fmt.Fprintf(&sb, "- **Word:** `%s`\n", strings.Join(word, " "))
	fmt.Fprintf(&sb, "- **Initial state:** %s\n", a.States().Name(a.Initial()))
	fmt.Fprintf(&sb, "- **Outcome:** %s\n\n", outcome)

	if len(steps) > 0 {
		sb.WriteString("| step | token | transition |\n")
		sb.WriteString("|---:|---|---|\n")
		for _, e := range steps {
			transition := a.Edge(e.Edge)
			if e.Type == domain.EventHalt {
				transition += " (halt)"
			}
			fmt.Fprintf(&sb, "| %d | `%s` | %s |\n", e.Step, e.Token, transition)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "> %s\n", outcome.Message())
	return sb.String()
}
