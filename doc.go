/*
Package labyrinth is a deterministic finite automaton (DFA) simulator built
around the wumpus cave game.

An automaton is a closed alphabet, a set of named states, a transition
table, an initial state and a set of accepting states. A word (a sequence
of input tokens) is read one token at a time; each token is resolved to a
symbol and the transition function moves the cursor. The run stops early
when a transition is undefined, and is then classified:

  - idle: the word produced no state at all
  - accepted: the last visited state is accepting
  - returned: the last visited state is the initial one
  - trapped: anything else

# Usage

	eng, err := labyrinth.NewClassic()
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Run(ctx, []string{"cima", "direita", "pegar", "baixo", "esquerda"})
	if err != nil {
		log.Fatal(err) // unrecognized symbol or malformed table
	}
	fmt.Println(res.Outcome) // accepted

Runs can also be consumed lazily with Read, which returns a Runner with a
scanner-style Next/State/Err API. Automata come from cave layouts
(pkg/cave), definition files (pkg/schema) or a maze library (pkg/ports).

# Observability

Every consumed token fires domain.LifecycleHooks, which is how Prometheus
metrics and structured logs (pkg/observability) are attached.
*/
package labyrinth
