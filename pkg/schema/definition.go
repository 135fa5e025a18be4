package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// SymbolSpec declares one letter of the alphabet.
type SymbolSpec = domain.SymbolDef

// StateRules lists the outgoing transitions of a state. Default applies to
// every symbol without an entry in Edges. An empty target leaves the
// transition undefined.
type StateRules struct {
	Default string            `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`
	Edges   map[string]string `json:"edges,omitempty" yaml:"edges,omitempty" mapstructure:"edges"`
}

// Definition is the serializable form of an automaton.
type Definition struct {
	Name        string                `json:"name" yaml:"name" mapstructure:"name"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Alphabet    []SymbolSpec          `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	States      []string              `json:"states" yaml:"states" mapstructure:"states"`
	Initial     string                `json:"initial" yaml:"initial" mapstructure:"initial"`
	Finals      []string              `json:"finals,omitempty" yaml:"finals,omitempty" mapstructure:"finals"`
	Transitions map[string]StateRules `json:"transitions,omitempty" yaml:"transitions,omitempty" mapstructure:"transitions"`
}

// Validate reports every problem of the definition at once.
func (d *Definition) Validate() error {
	_, err := d.compile()
	return err
}

// Build compiles the definition into a table-backed automaton.
func (d *Definition) Build() (*domain.Automaton, error) {
	a, err := d.compile()
	var agg *AggregateError
	if errors.As(err, &agg) {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidAutomaton, err)
	}
	return a, err
}

func (d *Definition) compile() (*domain.Automaton, error) {
	var errs []error
	fail := func(key, reason string, value any) {
		errs = append(errs, &ValidationError{Key: key, Reason: reason, Value: value})
	}

	if d.Name == "" {
		fail("name", "required", nil)
	}

	alphabet, err := domain.NewAlphabet(d.Alphabet...)
	if err != nil {
		fail("alphabet", err.Error(), nil)
	}
	states, err := domain.NewStateSet(d.States...)
	if err != nil {
		fail("states", err.Error(), nil)
	}
	if alphabet == nil || states == nil {
		return nil, &AggregateError{Errors: errs}
	}

	lookup := func(key, name string) domain.State {
		s, ok := states.Lookup(name)
		if !ok {
			fail(key, "unknown state", name)
			return domain.NoState
		}
		return s
	}

	initial := lookup("initial", d.Initial)
	finals := make([]domain.State, 0, len(d.Finals))
	for i, name := range d.Finals {
		finals = append(finals, lookup(fmt.Sprintf("finals[%d]", i), name))
	}

	table := domain.NewTable(states.Len(), alphabet.Len())
	for _, name := range sortedKeys(d.Transitions) {
		rules := d.Transitions[name]
		key := "transitions." + name
		from := lookup(key, name)
		if from == domain.NoState {
			continue
		}

		if rules.Default != "" {
			if to := lookup(key+".default", rules.Default); to != domain.NoState {
				_ = table.SetAll(from, to)
			}
		}

		seen := make(map[domain.Symbol]string, len(rules.Edges))
		for _, token := range sortedKeys(rules.Edges) {
			edgeKey := key + ".edges." + token
			on, err := alphabet.Resolve(token)
			if err != nil {
				fail(edgeKey, "unknown symbol", token)
				continue
			}
			if prev, dup := seen[on]; dup {
				fail(edgeKey, fmt.Sprintf("duplicate symbol %s, already set by %q", alphabet.Name(on), prev), token)
				continue
			}
			seen[on] = token
			target := rules.Edges[token]
			if target == "" {
				_ = table.Set(from, on, domain.NoState)
				continue
			}
			if to := lookup(edgeKey, target); to != domain.NoState {
				_ = table.Set(from, on, to)
			}
		}
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return domain.NewAutomaton(d.Name, alphabet, states, table, initial, finals...)
}

// FromAutomaton converts a table-backed automaton into a definition.
// Each state's most common target becomes its Default and only the
// remaining symbols are listed as edges.
func FromAutomaton(a *domain.Automaton) (*Definition, error) {
	table, ok := a.Table()
	if !ok {
		return nil, fmt.Errorf("automaton %q is not table-backed", a.Name())
	}

	alphabet := a.Alphabet()
	states := a.States()

	d := &Definition{
		Name:        a.Name(),
		States:      states.Names(),
		Initial:     states.Name(a.Initial()),
		Transitions: make(map[string]StateRules),
	}
	for _, s := range alphabet.Symbols() {
		d.Alphabet = append(d.Alphabet, alphabet.Def(s))
	}
	for _, f := range a.Finals() {
		d.Finals = append(d.Finals, states.Name(f))
	}

	for _, from := range states.States() {
		row := table.Row(from)
		def := mostCommon(row)

		rules := StateRules{}
		if def != domain.NoState {
			rules.Default = states.Name(def)
		}
		for on, to := range row {
			if to == def {
				continue
			}
			if rules.Edges == nil {
				rules.Edges = make(map[string]string)
			}
			target := ""
			if to != domain.NoState {
				target = states.Name(to)
			}
			rules.Edges[alphabet.Name(domain.Symbol(on))] = target
		}

		if rules.Default != "" || len(rules.Edges) > 0 {
			d.Transitions[states.Name(from)] = rules
		}
	}
	return d, nil
}

// mostCommon picks the target used by at least two symbols, preferring the
// most frequent and then the lowest state. NoState is never picked.
func mostCommon(row []domain.State) domain.State {
	counts := make(map[domain.State]int, len(row))
	for _, to := range row {
		if to != domain.NoState {
			counts[to]++
		}
	}
	best, bestCount := domain.NoState, 1
	for _, to := range sortedKeys(counts) {
		if counts[to] > bestCount {
			best, bestCount = to, counts[to]
		}
	}
	return best
}

func sortedKeys[K interface{ ~int | ~string }, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
