package domain

import (
	"fmt"
	"strings"
)

// Symbol identifies one letter of an Alphabet. It is the index of the
// letter in the order the alphabet was declared.
type Symbol int

// SymbolDef declares a letter: its display name plus any number of aliases
// (full words or single-letter abbreviations) accepted as input tokens.
type SymbolDef struct {
	Name    string   `json:"name" yaml:"name" mapstructure:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty" mapstructure:"aliases"`
}

// Alphabet is a closed, immutable set of symbols with case-insensitive
// token resolution.
type Alphabet struct {
	defs   []SymbolDef
	lookup map[string]Symbol
}

// NewAlphabet builds an alphabet from its letter declarations.
// Names and aliases are matched case-insensitively and must not collide.
func NewAlphabet(defs ...SymbolDef) (*Alphabet, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrInvalidAutomaton)
	}

	a := &Alphabet{
		defs:   make([]SymbolDef, len(defs)),
		lookup: make(map[string]Symbol, len(defs)*3),
	}

	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: symbol #%d has no name", ErrInvalidAutomaton, i)
		}
		keys := append([]string{def.Name}, def.Aliases...)
		for _, key := range keys {
			k := strings.ToLower(key)
			if k == "" {
				return nil, fmt.Errorf("%w: symbol %q has an empty alias", ErrInvalidAutomaton, def.Name)
			}
			if other, ok := a.lookup[k]; ok && other != Symbol(i) {
				return nil, fmt.Errorf("%w: token %q is claimed by both %q and %q",
					ErrInvalidAutomaton, key, defs[other].Name, def.Name)
			}
			a.lookup[k] = Symbol(i)
		}
		a.defs[i] = SymbolDef{
			Name:    def.Name,
			Aliases: append([]string(nil), def.Aliases...),
		}
	}

	return a, nil
}

// Resolve maps an input token to its symbol.
// Returns an *UnrecognizedSymbolError if no name or alias matches.
func (a *Alphabet) Resolve(token string) (Symbol, error) {
	if s, ok := a.lookup[strings.ToLower(token)]; ok {
		return s, nil
	}
	return 0, &UnrecognizedSymbolError{Token: token}
}

// Len returns the number of letters.
func (a *Alphabet) Len() int {
	return len(a.defs)
}

// Contains reports whether s is a letter of this alphabet.
func (a *Alphabet) Contains(s Symbol) bool {
	return s >= 0 && int(s) < len(a.defs)
}

// Name returns the display name of s.
func (a *Alphabet) Name(s Symbol) string {
	if !a.Contains(s) {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return a.defs[s].Name
}

// Def returns a copy of the declaration of s. Unknown symbols get a
// declaration with only the placeholder name.
func (a *Alphabet) Def(s Symbol) SymbolDef {
	if !a.Contains(s) {
		return SymbolDef{Name: a.Name(s)}
	}
	def := a.defs[s]
	def.Aliases = append([]string(nil), def.Aliases...)
	return def
}

// Symbols lists every letter in declaration order.
func (a *Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.defs))
	for i := range a.defs {
		out[i] = Symbol(i)
	}
	return out
}
