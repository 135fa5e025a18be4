package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// OverlayFromTrace marks every traced state as visited and the last one as current.
func OverlayFromTrace(trace []string) *GraphOverlay {
	overlay := &GraphOverlay{VisitedStates: trace}
	if len(trace) > 0 {
		overlay.CurrentState = trace[len(trace)-1]
	}
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Initial: ((Circle))
// - Final: (((Double circle)))
// - Dead end (no outgoing transition): {{Hexagon}}
// - Default: [Rectangle]
// Self-loops are omitted, and symbols sharing a target are merged into one edge.
func GenerateMermaid(a *domain.Automaton, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	states := a.States()
	alphabet := a.Alphabet()
	symbols := alphabet.Symbols()

	for _, s := range states.States() {
		name := states.Name(s)
		safeID := sanitizeMermaidID(name)

		var targets []domain.State
		labels := make(map[domain.State][]string)
		defined := 0
		for _, on := range symbols {
			to, ok := a.Transition(s, on)
			if !ok {
				continue
			}
			defined++
			if to == s {
				continue
			}
			if _, seen := labels[to]; !seen {
				targets = append(targets, to)
			}
			labels[to] = append(labels[to], alphabet.Name(on))
		}

		opener, closer := "[", "]"
		switch {
		case a.IsFinal(s):
			opener, closer = "(((", ")))"
		case s == a.Initial():
			opener, closer = "((", "))"
		case defined == 0:
			opener, closer = "{{", "}}"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, name, closer)

		for _, to := range targets {
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n",
				safeID, strings.Join(labels[to], ", "), sanitizeMermaidID(states.Name(to)))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(name)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentState != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentState))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(id)
}
