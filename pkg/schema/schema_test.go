package schema_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/labyrinth/pkg/cave"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toggleYAML = `
name: toggle
alphabet:
  - name: Flip
    aliases: [f]
  - name: Stay
states: [dark, lit, broken]
initial: dark
finals: [lit]
transitions:
  dark:
    default: dark
    edges:
      Flip: lit
  lit:
    default: lit
    edges:
      f: dark
      Stay: ""
`

func TestParse_YAML(t *testing.T) {
	def, err := schema.Parse([]byte(toggleYAML), schema.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "toggle", def.Name)
	assert.Equal(t, []string{"dark", "lit", "broken"}, def.States)

	a, err := def.Build()
	require.NoError(t, err)

	dark, _ := a.States().Lookup("dark")
	lit, _ := a.States().Lookup("lit")
	broken, _ := a.States().Lookup("broken")
	flip, _ := a.Alphabet().Resolve("flip")
	stay, _ := a.Alphabet().Resolve("stay")

	to, ok := a.Transition(dark, flip)
	require.True(t, ok)
	assert.Equal(t, lit, to)

	to, ok = a.Transition(dark, stay)
	require.True(t, ok)
	assert.Equal(t, dark, to, "default applies to symbols without an edge")

	_, ok = a.Transition(lit, stay)
	assert.False(t, ok, "an empty target overrides the default")

	_, ok = a.Transition(broken, flip)
	assert.False(t, ok, "states without rules have no transitions")

	assert.True(t, a.IsFinal(lit))
	assert.False(t, a.IsFinal(dark))
}

func TestParse_JSON_WeakTyping(t *testing.T) {
	data := []byte(`{
		"name": "numbers",
		"alphabet": [{"name": "go"}],
		"states": [11, 12],
		"initial": 11,
		"finals": [12],
		"transitions": {"11": {"default": 12}}
	}`)

	def, err := schema.Parse(data, schema.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"11", "12"}, def.States)

	a, err := def.Build()
	require.NoError(t, err)
	to, ok := a.Transition(a.Initial(), 0)
	require.True(t, ok)
	assert.Equal(t, "12", a.States().Name(to))
}

func TestParse_Errors(t *testing.T) {
	t.Run("Unknown Key", func(t *testing.T) {
		_, err := schema.Parse([]byte("name: x\nstart: a\n"), schema.FormatYAML)
		assert.ErrorContains(t, err, "start")
	})

	t.Run("Empty Document", func(t *testing.T) {
		_, err := schema.Parse([]byte(""), schema.FormatYAML)
		assert.Error(t, err)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := schema.Parse([]byte("{"), schema.FormatJSON)
		assert.Error(t, err)
	})

	t.Run("Unknown Format", func(t *testing.T) {
		_, err := schema.Parse([]byte("{}"), schema.Format("toml"))
		assert.ErrorIs(t, err, schema.ErrUnknownFormat)
	})
}

func TestBuild_ReportsEveryProblem(t *testing.T) {
	def := &schema.Definition{
		Name:     "broken",
		Alphabet: []schema.SymbolSpec{{Name: "a"}},
		States:   []string{"s0", "s1"},
		Initial:  "s9",
		Finals:   []string{"s1", "nope"},
		Transitions: map[string]schema.StateRules{
			"s0":    {Default: "s1", Edges: map[string]string{"b": "s0"}},
			"s1":    {Edges: map[string]string{"a": "void"}},
			"ghost": {Default: "s0"},
		},
	}

	_, err := def.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)

	var keys []string
	for _, e := range schema.ValidationErrors(err) {
		var verr *schema.ValidationError
		require.ErrorAs(t, e, &verr)
		keys = append(keys, verr.Key)
	}
	assert.ElementsMatch(t, []string{
		"initial",
		"finals[1]",
		"transitions.ghost",
		"transitions.s0.edges.b",
		"transitions.s1.edges.a",
	}, keys)

	assert.Equal(t, schema.ValidationErrors(def.Validate()), schema.ValidationErrors(err))
}

func TestBuild_RejectsDuplicateEdgeSymbols(t *testing.T) {
	def := &schema.Definition{
		Name:     "dup",
		Alphabet: []schema.SymbolSpec{{Name: "Up", Aliases: []string{"c"}}},
		States:   []string{"a", "b", "z"},
		Initial:  "a",
		Transitions: map[string]schema.StateRules{
			"a": {Edges: map[string]string{"Up": "b", "c": "z"}},
		},
	}

	err := def.Validate()
	require.Error(t, err)

	errs := schema.ValidationErrors(err)
	require.Len(t, errs, 1)
	var verr *schema.ValidationError
	require.ErrorAs(t, errs[0], &verr)
	assert.Equal(t, "transitions.a.edges.c", verr.Key)
	assert.Contains(t, verr.Reason, "duplicate symbol Up")

	_, err = def.Build()
	assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
}

func TestBuild_WrapsOnce(t *testing.T) {
	def := &schema.Definition{Name: "x", Alphabet: []schema.SymbolSpec{{Name: "a"}}, States: []string{"q"}, Initial: "nope"}

	_, err := def.Build()
	require.ErrorIs(t, err, domain.ErrInvalidAutomaton)
	assert.Equal(t, 1, strings.Count(err.Error(), domain.ErrInvalidAutomaton.Error()))
}

func TestBuild_RejectsBadSets(t *testing.T) {
	def := &schema.Definition{Name: "x", States: []string{"a", "a"}, Initial: "a"}
	err := def.Validate()
	require.Error(t, err)
	assert.Len(t, schema.ValidationErrors(err), 2, "empty alphabet and duplicate state")
}

func TestFromAutomaton_RoundTrip(t *testing.T) {
	a, err := cave.Classic.Compile()
	require.NoError(t, err)

	def, err := schema.FromAutomaton(a)
	require.NoError(t, err)
	assert.Equal(t, "wumpus", def.Name)
	assert.Equal(t, []string{"B11", "D11"}, def.Finals)

	a11 := def.Transitions["A11"]
	assert.Equal(t, "A11", a11.Default, "walls and idle letters loop back")
	assert.Equal(t, map[string]string{"Up": "A21", "Right": "A12"}, a11.Edges)

	a22 := def.Transitions["A22"]
	assert.Empty(t, a22.Default, "every letter leads somewhere else")
	assert.Equal(t, "B22", a22.Edges["Grab"])
	assert.Len(t, a22.Edges, 6)

	_, hasPit := def.Transitions["A13"]
	assert.False(t, hasPit, "pits have no rules")

	for _, format := range []schema.Format{schema.FormatYAML, schema.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := schema.Marshal(def, format)
			require.NoError(t, err)

			parsed, err := schema.Parse(data, format)
			require.NoError(t, err)
			rebuilt, err := parsed.Build()
			require.NoError(t, err)

			want, _ := a.Table()
			got, ok := rebuilt.Table()
			require.True(t, ok)
			assert.True(t, want.Equal(got))
			assert.Equal(t, a.Finals(), rebuilt.Finals())
			assert.Equal(t, a.Initial(), rebuilt.Initial())
		})
	}
}

func TestFromAutomaton_RequiresTable(t *testing.T) {
	alphabet := cave.Alphabet(false)
	states, err := domain.NewStateSet("only")
	require.NoError(t, err)
	fn := domain.TransitionFunc(func(domain.State, domain.Symbol) (domain.State, bool) { return 0, true })
	a, err := domain.NewAutomaton("func", alphabet, states, fn, 0)
	require.NoError(t, err)

	_, err = schema.FromAutomaton(a)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toggle.yml")
	require.NoError(t, os.WriteFile(path, []byte(toggleYAML), 0o644))

	def, err := schema.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "toggle", def.Name)

	_, err = schema.LoadFile(filepath.Join(dir, "toggle.txt"))
	assert.ErrorIs(t, err, schema.ErrUnknownFormat)

	_, err = schema.LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]schema.Format{
		"yaml": schema.FormatYAML, "YML": schema.FormatYAML, ".json": schema.FormatJSON,
	} {
		got, err := schema.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := schema.ParseFormat("xml")
	assert.ErrorIs(t, err, schema.ErrUnknownFormat)
}
