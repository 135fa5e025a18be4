package domain

import "time"

// RunRecord is the persisted summary of a classified run.
type RunRecord struct {
	ID        string    `json:"id"`
	Automaton string    `json:"automaton"`
	Word      []string  `json:"word"`
	Trace     []string  `json:"trace"`
	Halted    bool      `json:"halted"`
	Outcome   Outcome   `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}

// Last returns the name of the last visited state, or "" for an empty trace.
func (r *RunRecord) Last() string {
	if len(r.Trace) == 0 {
		return ""
	}
	return r.Trace[len(r.Trace)-1]
}
