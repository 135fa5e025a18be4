/*
Package cave authors cave layouts and compiles them into automata.

A layout is plain data: grid size, entrance, treasure, an optional wumpus
and the pits. Compile turns it into a table-driven domain.Automaton whose
states are named <layer><row><col>, where the layer letter carries the
treasure and wumpus flags (A: wumpus alive, B: alive with treasure,
C: wumpus dead, D: dead with treasure).
*/
package cave
