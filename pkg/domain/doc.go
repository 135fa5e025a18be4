/*
Package domain contains the core model of the labyrinth automaton engine.

It defines the closed alphabet and state sets, the transition function and
its dense table form, the immutable Automaton aggregate, run outcomes and the
observability events. This package is kept pure and free of I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Alphabet / Symbol: the input letters and their case-insensitive aliases.
  - StateSet / State: the named states, with NoState as the absent target.
  - Table: δ as a states × symbols array.
  - Automaton: alphabet + states + δ + initial + finals.
  - Outcome: the classification of a finished run.
  - RunRecord: the persisted summary of a run.
*/
package domain
