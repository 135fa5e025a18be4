package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/labyrinth/pkg/cave"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/schema"
)

// Library implements ports.MazeLibrary using an in-memory map.
type Library struct {
	defs map[string]*schema.Definition
}

// NewLibrary creates a library from the given definitions.
func NewLibrary(defs ...*schema.Definition) (*Library, error) {
	l := &Library{defs: make(map[string]*schema.Definition, len(defs))}
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("definition missing name")
		}
		if _, dup := l.defs[d.Name]; dup {
			return nil, fmt.Errorf("duplicate maze %q", d.Name)
		}
		l.defs[d.Name] = d
	}
	return l, nil
}

// NewBuiltinLibrary compiles every built-in cave layout into a library.
func NewBuiltinLibrary() (*Library, error) {
	var defs []*schema.Definition
	for _, layout := range cave.Builtin() {
		a, err := layout.Compile()
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s: %w", layout.Name, err)
		}
		def, err := schema.FromAutomaton(a)
		if err != nil {
			return nil, err
		}
		def.Description = fmt.Sprintf("%dx%d cave", layout.Rows, layout.Cols)
		defs = append(defs, def)
	}
	return NewLibrary(defs...)
}

// Get returns the definition registered under name. Lookup ignores case.
func (l *Library) Get(ctx context.Context, name string) (*schema.Definition, error) {
	if d, ok := l.defs[name]; ok {
		return d, nil
	}
	for key, d := range l.defs {
		if strings.EqualFold(key, name) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrMazeNotFound, name)
}

// List returns all maze names.
func (l *Library) List(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(l.defs))
	for k := range l.defs {
		keys = append(keys, k)
	}
	slices.Sort(keys) // Deterministic order
	return keys, nil
}
