package domain

import "fmt"

// Transitioner is the transition function δ of an automaton.
// The boolean is false when no move is defined for (from, on); that is a
// regular outcome, not an error.
type Transitioner interface {
	Next(from State, on Symbol) (State, bool)
}

// TransitionFunc adapts a pure function to a Transitioner.
type TransitionFunc func(from State, on Symbol) (State, bool)

// Next calls f(from, on).
func (f TransitionFunc) Next(from State, on Symbol) (State, bool) {
	return f(from, on)
}

// Edge is one application of δ. To is NoState when the move is undefined.
type Edge struct {
	From State  `json:"from"`
	On   Symbol `json:"on"`
	To   State  `json:"to"`
}

// Table is a dense states × symbols transition table.
// Cells hold NoState until set.
type Table struct {
	numStates  int
	numSymbols int
	cells      []State
}

// NewTable allocates an empty table.
func NewTable(numStates, numSymbols int) *Table {
	cells := make([]State, numStates*numSymbols)
	for i := range cells {
		cells[i] = NoState
	}
	return &Table{
		numStates:  numStates,
		numSymbols: numSymbols,
		cells:      cells,
	}
}

// Dims returns the number of states and symbols the table was sized for.
func (t *Table) Dims() (numStates, numSymbols int) {
	return t.numStates, t.numSymbols
}

func (t *Table) inRange(from State, on Symbol) bool {
	return from >= 0 && int(from) < t.numStates && on >= 0 && int(on) < t.numSymbols
}

// Set defines δ(from, on) = to. Passing NoState clears the cell.
func (t *Table) Set(from State, on Symbol, to State) error {
	if !t.inRange(from, on) {
		return fmt.Errorf("cell (%d, %d) is outside a %dx%d table", from, on, t.numStates, t.numSymbols)
	}
	if to != NoState && (to < 0 || int(to) >= t.numStates) {
		return fmt.Errorf("target %d is outside a table of %d states", to, t.numStates)
	}
	t.cells[int(from)*t.numSymbols+int(on)] = to
	return nil
}

// SetAll defines δ(from, a) = to for every symbol a.
func (t *Table) SetAll(from State, to State) error {
	for on := 0; on < t.numSymbols; on++ {
		if err := t.Set(from, Symbol(on), to); err != nil {
			return err
		}
	}
	return nil
}

// Next implements Transitioner.
func (t *Table) Next(from State, on Symbol) (State, bool) {
	if !t.inRange(from, on) {
		return NoState, false
	}
	to := t.cells[int(from)*t.numSymbols+int(on)]
	return to, to != NoState
}

// Row returns the targets of every symbol from a state, NoState included.
func (t *Table) Row(from State) []State {
	if from < 0 || int(from) >= t.numStates {
		return nil
	}
	start := int(from) * t.numSymbols
	return append([]State(nil), t.cells[start:start+t.numSymbols]...)
}

// Equal reports whether both tables define the same function.
func (t *Table) Equal(other *Table) bool {
	if other == nil || t.numStates != other.numStates || t.numSymbols != other.numSymbols {
		return false
	}
	for i := range t.cells {
		if t.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
