package domain

// EventType defines the category of the event.
type EventType string

const (
	EventStep   EventType = "step"
	EventHalt   EventType = "halt"
	EventFinish EventType = "finish"
)

// StepEvent describes one consumed token. For EventHalt, To is NoState.
type StepEvent struct {
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton"`
	Step      int       `json:"step"` // 1-based index of the token
	Token     string    `json:"token"`
	Edge      Edge      `json:"edge"`

	// Names resolved against the automaton, for logs and metric labels.
	FromName   string `json:"from_name"`
	SymbolName string `json:"symbol_name"`
	ToName     string `json:"to_name"`
}

// RunEvent is emitted once when a run stops, normally or not.
// Outcome is empty when Err is set.
type RunEvent struct {
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton"`
	Steps     int       `json:"steps"`
	Halted    bool      `json:"halted"`
	Outcome   Outcome   `json:"outcome,omitempty"`
	Err       error     `json:"-"`
}

// LifecycleHooks defines callbacks for run observability.
// They are called synchronously from the goroutine driving the run.
type LifecycleHooks struct {
	OnStep   func(*StepEvent)
	OnHalt   func(*StepEvent)
	OnFinish func(*RunEvent)
}

// ComposeHooks returns hooks that call each of the given hooks in order.
func ComposeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStep: func(e *StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(e)
				}
			}
		},
		OnHalt: func(e *StepEvent) {
			for _, h := range hooks {
				if h.OnHalt != nil {
					h.OnHalt(e)
				}
			}
		},
		OnFinish: func(e *RunEvent) {
			for _, h := range hooks {
				if h.OnFinish != nil {
					h.OnFinish(e)
				}
			}
		},
	}
}
