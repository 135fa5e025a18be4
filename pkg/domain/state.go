package domain

import "fmt"

// State identifies one element of a StateSet. It is the index of the state
// in declaration order.
type State int

// NoState marks an absent transition target.
const NoState State = -1

// StateSet is a closed, immutable set of named states.
type StateSet struct {
	names []string
	index map[string]State
}

// NewStateSet creates a state set. Names must be unique and non-empty.
func NewStateSet(names ...string) (*StateSet, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty state set", ErrInvalidAutomaton)
	}

	set := &StateSet{
		names: make([]string, len(names)),
		index: make(map[string]State, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: state #%d has no name", ErrInvalidAutomaton, i)
		}
		if _, dup := set.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate state %q", ErrInvalidAutomaton, name)
		}
		set.names[i] = name
		set.index[name] = State(i)
	}
	return set, nil
}

// Len returns the number of states.
func (s *StateSet) Len() int {
	return len(s.names)
}

// Contains reports whether st belongs to the set.
func (s *StateSet) Contains(st State) bool {
	return st >= 0 && int(st) < len(s.names)
}

// Lookup finds a state by name.
func (s *StateSet) Lookup(name string) (State, bool) {
	st, ok := s.index[name]
	return st, ok
}

// Name returns the name of st, "—" for NoState.
func (s *StateSet) Name(st State) string {
	if st == NoState {
		return "—"
	}
	if !s.Contains(st) {
		return fmt.Sprintf("State(%d)", int(st))
	}
	return s.names[st]
}

// Names returns the state names in declaration order.
func (s *StateSet) Names() []string {
	return append([]string(nil), s.names...)
}

// States lists every state in declaration order.
func (s *StateSet) States() []State {
	out := make([]State, len(s.names))
	for i := range s.names {
		out[i] = State(i)
	}
	return out
}
