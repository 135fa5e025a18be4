package runtime

import "github.com/aretw0/labyrinth/pkg/domain"

// Classify decides the outcome of a run from its last trace element.
// produced is false when the trace is empty, in which case last is ignored.
func Classify(a *domain.Automaton, last domain.State, produced bool) domain.Outcome {
	switch {
	case !produced:
		return domain.OutcomeIdle
	case a.IsFinal(last):
		return domain.OutcomeAccepted
	case last == a.Initial():
		return domain.OutcomeReturned
	default:
		return domain.OutcomeTrapped
	}
}
