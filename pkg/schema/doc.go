// Package schema reads and writes automaton definition files.
//
// A definition lists the alphabet, the states, the initial state, the
// accepting states and, per state, a default target plus per-symbol
// edges. An empty target means "no transition":
//
//	name: toggle
//	alphabet:
//	  - name: Flip
//	    aliases: [f]
//	  - name: Stay
//	states: [dark, lit]
//	initial: dark
//	finals: [lit]
//	transitions:
//	  dark:
//	    default: dark
//	    edges:
//	      Flip: lit
//	  lit:
//	    default: lit
//	    edges:
//	      Flip: dark
//
// Files are decoded into a generic map first and then into Definition with
// mapstructure, so unknown keys are rejected for both YAML and JSON.
package schema
