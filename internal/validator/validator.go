package validator

import (
	"errors"
	"fmt"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// ErrNoReachableFinal is returned when no accepting state can be reached
// from the initial state, i.e. the automaton accepts no word.
var ErrNoReachableFinal = errors.New("no accepting state is reachable")

// Report summarises the structure of an automaton as seen from its initial state.
type Report struct {
	Automaton string `json:"automaton"`
	States    int    `json:"states"`
	Symbols   int    `json:"symbols"`

	Reachable       []string `json:"reachable"`
	Unreachable     []string `json:"unreachable,omitempty"`
	DeadEnds        []string `json:"dead_ends,omitempty"` // reachable, no outgoing transition at all
	Partial         []string `json:"partial,omitempty"`   // reachable, some symbol halts
	ReachableFinals []string `json:"reachable_finals,omitempty"`
}

// Validate crawls the automaton breadth-first from its initial state.
// The report is always returned; the error is set when no final is reachable.
func Validate(a *domain.Automaton) (*Report, error) {
	states := a.States()
	symbols := a.Alphabet().Symbols()

	visited := make([]bool, states.Len())
	queue := []domain.State{a.Initial()}
	visited[a.Initial()] = true

	report := &Report{
		Automaton: a.Name(),
		States:    states.Len(),
		Symbols:   len(symbols),
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		defined := 0
		for _, on := range symbols {
			to, ok := a.Transition(current, on)
			if !ok || !states.Contains(to) {
				continue
			}
			defined++
			if !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
		}

		name := states.Name(current)
		switch {
		case defined == 0:
			report.DeadEnds = append(report.DeadEnds, name)
		case defined < len(symbols):
			report.Partial = append(report.Partial, name)
		}
	}

	for _, s := range states.States() {
		name := states.Name(s)
		if !visited[s] {
			report.Unreachable = append(report.Unreachable, name)
			continue
		}
		report.Reachable = append(report.Reachable, name)
		if a.IsFinal(s) {
			report.ReachableFinals = append(report.ReachableFinals, name)
		}
	}

	if len(report.ReachableFinals) == 0 {
		return report, fmt.Errorf("%s: %w", a.Name(), ErrNoReachableFinal)
	}
	return report, nil
}
