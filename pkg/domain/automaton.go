package domain

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Automaton is an immutable DFA: alphabet, states, transition function,
// initial state and accepting set. It holds no run state and may be shared
// by any number of concurrent runs.
type Automaton struct {
	name     string
	alphabet *Alphabet
	states   *StateSet
	delta    Transitioner
	initial  State
	finals   *bitset.BitSet
}

// NewAutomaton validates the parts and assembles an automaton.
// The initial state and every final state must belong to states, and a
// *Table transition must match the alphabet and state set dimensions.
func NewAutomaton(name string, alphabet *Alphabet, states *StateSet, delta Transitioner, initial State, finals ...State) (*Automaton, error) {
	if alphabet == nil || alphabet.Len() == 0 {
		return nil, fmt.Errorf("%w: missing alphabet", ErrInvalidAutomaton)
	}
	if states == nil || states.Len() == 0 {
		return nil, fmt.Errorf("%w: missing states", ErrInvalidAutomaton)
	}
	if delta == nil {
		return nil, fmt.Errorf("%w: missing transition function", ErrInvalidAutomaton)
	}
	if t, ok := delta.(*Table); ok {
		ns, na := t.Dims()
		if ns != states.Len() || na != alphabet.Len() {
			return nil, fmt.Errorf("%w: table is %dx%d, want %dx%d",
				ErrInvalidAutomaton, ns, na, states.Len(), alphabet.Len())
		}
	}
	if !states.Contains(initial) {
		return nil, fmt.Errorf("%w: initial state %d is not declared", ErrInvalidAutomaton, initial)
	}

	set := bitset.New(uint(states.Len()))
	for _, f := range finals {
		if !states.Contains(f) {
			return nil, fmt.Errorf("%w: final state %d is not declared", ErrInvalidAutomaton, f)
		}
		set.Set(uint(f))
	}

	return &Automaton{
		name:     name,
		alphabet: alphabet,
		states:   states,
		delta:    delta,
		initial:  initial,
		finals:   set,
	}, nil
}

// Name returns the label given at construction.
func (a *Automaton) Name() string { return a.name }

// Alphabet returns the input alphabet.
func (a *Automaton) Alphabet() *Alphabet { return a.alphabet }

// States returns the declared state set.
func (a *Automaton) States() *StateSet { return a.states }

// Initial returns the start state.
func (a *Automaton) Initial() State { return a.initial }

// IsFinal reports whether s is an accepting state.
func (a *Automaton) IsFinal(s State) bool {
	if s < 0 {
		return false
	}
	return a.finals.Test(uint(s))
}

// Finals lists the accepting states in ascending order.
func (a *Automaton) Finals() []State {
	out := make([]State, 0, a.finals.Count())
	for i, ok := a.finals.NextSet(0); ok; i, ok = a.finals.NextSet(i + 1) {
		out = append(out, State(i))
	}
	return out
}

// Transition applies δ.
func (a *Automaton) Transition(from State, on Symbol) (State, bool) {
	return a.delta.Next(from, on)
}

// Table returns the backing table when δ is table driven.
func (a *Automaton) Table() (*Table, bool) {
	t, ok := a.delta.(*Table)
	return t, ok
}

// Edge renders an edge with state and symbol names, e.g. "δ(A11, Up) => A21".
func (a *Automaton) Edge(e Edge) string {
	return fmt.Sprintf("δ(%s, %s) => %s", a.states.Name(e.From), a.alphabet.Name(e.On), a.states.Name(e.To))
}
