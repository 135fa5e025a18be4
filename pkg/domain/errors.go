package domain

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedSymbol is returned when an input token matches no letter of the alphabet.
var ErrUnrecognizedSymbol = errors.New("unrecognized symbol")

// ErrInvalidTransitionTarget is returned when δ yields a state outside the declared set.
// It signals a malformed table, not bad input.
var ErrInvalidTransitionTarget = errors.New("invalid transition target")

// ErrInvalidAutomaton is returned when an automaton (or its parts) violates a construction invariant.
var ErrInvalidAutomaton = errors.New("invalid automaton")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrMazeNotFound is returned when a library has no maze under the requested name.
var ErrMazeNotFound = errors.New("maze not found")

// UnrecognizedSymbolError carries the offending token.
type UnrecognizedSymbolError struct {
	Token string
}

func (e *UnrecognizedSymbolError) Error() string {
	return fmt.Sprintf("symbol %q is not recognized by the alphabet", e.Token)
}

func (e *UnrecognizedSymbolError) Unwrap() error {
	return ErrUnrecognizedSymbol
}

// InvalidTransitionTargetError describes the bad edge.
type InvalidTransitionTargetError struct {
	From State
	On   Symbol
	To   State
}

func (e *InvalidTransitionTargetError) Error() string {
	return fmt.Sprintf("transition (%d, %d) targets undeclared state %d", e.From, e.On, e.To)
}

func (e *InvalidTransitionTargetError) Unwrap() error {
	return ErrInvalidTransitionTarget
}
