package runtime

import (
	"iter"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// Runner walks one word through the automaton, one token per Next call.
// It owns its cursor and cannot be restarted; use Engine.Read again for a new run.
//
//	r := engine.Read(word)
//	for r.Next() {
//		fmt.Println(r.State())
//	}
//	if err := r.Err(); err != nil {
//		return err
//	}
type Runner struct {
	engine  *Engine
	word    []string
	current domain.State
	last    domain.State
	steps   int
	halted  bool
	done    bool
	err     error
}

// Next consumes the next token. It returns false once the word is
// exhausted, a transition is undefined, or a fatal error occurred.
func (r *Runner) Next() bool {
	if r.done {
		return false
	}
	if len(r.word) == 0 {
		r.finish()
		return false
	}

	a := r.engine.automaton
	token := r.word[0]

	symbol, err := a.Alphabet().Resolve(token)
	if err != nil {
		r.fail(err)
		return false
	}
	r.word = r.word[1:]

	from := r.current
	to, ok := a.Transition(from, symbol)
	event := &domain.StepEvent{
		Automaton:  a.Name(),
		Step:       r.steps + 1,
		Token:      token,
		Edge:       domain.Edge{From: from, On: symbol, To: domain.NoState},
		FromName:   a.States().Name(from),
		SymbolName: a.Alphabet().Name(symbol),
	}

	if !ok {
		event.Type = domain.EventHalt
		event.ToName = a.States().Name(domain.NoState)
		r.engine.logger.Debug("transition", "edge", a.Edge(event.Edge), "step", event.Step)
		if h := r.engine.hooks.OnHalt; h != nil {
			h(event)
		}
		r.halted = true
		r.finish()
		return false
	}

	if r.engine.strict && !a.States().Contains(to) {
		r.fail(&domain.InvalidTransitionTargetError{From: from, On: symbol, To: to})
		return false
	}

	event.Type = domain.EventStep
	event.Edge.To = to
	event.ToName = a.States().Name(to)
	r.engine.logger.Debug("transition", "edge", a.Edge(event.Edge), "step", event.Step)
	if h := r.engine.hooks.OnStep; h != nil {
		h(event)
	}

	r.current = to
	r.last = to
	r.steps++
	return true
}

// State returns the state produced by the last successful Next.
func (r *Runner) State() domain.State {
	return r.last
}

// Current returns the cursor: the initial state before any step.
func (r *Runner) Current() domain.State {
	return r.current
}

// Err returns the fatal error that stopped the run, if any.
func (r *Runner) Err() error {
	return r.err
}

// Halted reports whether the run stopped on an undefined transition.
func (r *Runner) Halted() bool {
	return r.halted
}

// Steps returns how many trace elements were produced so far.
func (r *Runner) Steps() int {
	return r.steps
}

// Done reports whether the run has stopped.
func (r *Runner) Done() bool {
	return r.done
}

// Remaining returns the tokens not consumed yet.
func (r *Runner) Remaining() []string {
	return append([]string(nil), r.word...)
}

// Outcome classifies the run. It is only meaningful once Done is true and Err is nil.
func (r *Runner) Outcome() domain.Outcome {
	return Classify(r.engine.automaton, r.last, r.steps > 0)
}

// All drains the runner as an iterator. Check Err afterwards.
func (r *Runner) All() iter.Seq[domain.State] {
	return func(yield func(domain.State) bool) {
		for r.Next() {
			if !yield(r.State()) {
				return
			}
		}
	}
}

func (r *Runner) finish() {
	r.done = true
	if h := r.engine.hooks.OnFinish; h != nil {
		h(&domain.RunEvent{
			Type:      domain.EventFinish,
			Automaton: r.engine.automaton.Name(),
			Steps:     r.steps,
			Halted:    r.halted,
			Outcome:   r.Outcome(),
		})
	}
}

func (r *Runner) fail(err error) {
	r.done = true
	r.err = err
	r.engine.logger.Debug("run aborted", "err", err, "step", r.steps+1)
	if h := r.engine.hooks.OnFinish; h != nil {
		h(&domain.RunEvent{
			Type:      domain.EventFinish,
			Automaton: r.engine.automaton.Name(),
			Steps:     r.steps,
			Err:       err,
		})
	}
}
