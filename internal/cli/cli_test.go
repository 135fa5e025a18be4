package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/labyrinth/internal/logging"
	"github.com/aretw0/labyrinth/pkg/adapters/redis"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toggleYAML = `name: toggle
alphabet:
  - name: flip
    aliases: [f]
states: [low, high]
initial: low
finals: [high]
transitions:
  low:
    default: high
  high:
    default: low
`

func run(t *testing.T, opts RunOptions) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts.Out = &out
	opts.Logger = logging.NewNop()
	err := Execute(context.Background(), opts)
	return out.String(), err
}

func TestExecute_DefaultWord(t *testing.T) {
	out, err := run(t, RunOptions{})
	require.NoError(t, err)

	want := []string{
		"Initial state => A11",
		"δ(A11, Up) => A21",
		"δ(A21, Right) => A22",
		"δ(A22, Grab) => B22",
		"δ(B22, Down) => B12",
		"δ(B12, Left) => B11",
		domain.OutcomeAccepted.Message(),
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out)
}

func TestExecute_Halt(t *testing.T) {
	out, err := run(t, RunOptions{Word: "d d c"})
	require.NoError(t, err)

	assert.Contains(t, out, "δ(A12, Right) => A13\n")
	assert.Contains(t, out, "δ(A13, Up) => —\n")
	assert.Contains(t, out, domain.OutcomeTrapped.Message())
}

func TestExecute_UnrecognizedSymbol(t *testing.T) {
	out, err := run(t, RunOptions{Word: "c, xyz"})
	require.Error(t, err)

	var symErr *domain.UnrecognizedSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, "xyz", symErr.Token)
	assert.Contains(t, out, "δ(A11, Up) => A21\n")
	assert.NotContains(t, out, "xyz", "errors are left to the caller")
	assert.NotContains(t, out, "word accepted")
}

func TestExecute_JSON(t *testing.T) {
	out, err := run(t, RunOptions{Word: "cima direita pegar baixo esquerda", JSON: true})
	require.NoError(t, err)

	var rec domain.RunRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, domain.OutcomeAccepted, rec.Outcome)
	assert.Equal(t, []string{"A21", "A22", "B22", "B12", "B11"}, rec.Trace)
	assert.NotEmpty(t, rec.ID)
}

func TestExecute_WordSources(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "word.txt")
		require.NoError(t, os.WriteFile(path, []byte("c\nd\n"), 0644))

		out, err := run(t, RunOptions{File: path})
		require.NoError(t, err)
		assert.Contains(t, out, "δ(A21, Right) => A22\n")
		assert.Contains(t, out, domain.OutcomeTrapped.Message())
	})

	t.Run("Stdin", func(t *testing.T) {
		out, err := run(t, RunOptions{File: "-", In: strings.NewReader("")})
		require.NoError(t, err)
		assert.Equal(t, "Initial state => A11\n"+domain.OutcomeIdle.Message()+"\n", out)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := run(t, RunOptions{File: filepath.Join(t.TempDir(), "nope.txt")})
		assert.Error(t, err)
	})
}

func TestExecute_MazeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toggle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(toggleYAML), 0644))

	out, err := run(t, RunOptions{Options: Options{Maze: path}, Word: "f f f"})
	require.NoError(t, err)
	assert.Contains(t, out, "Initial state => low\n")
	assert.Contains(t, out, "δ(high, flip) => low\n")
	assert.Contains(t, out, domain.OutcomeAccepted.Message())
}

func TestExecute_BuiltinByName(t *testing.T) {
	out, err := run(t, RunOptions{Options: Options{Name: "quiet"}, Word: "a"})
	require.ErrorIs(t, err, domain.ErrUnrecognizedSymbol, "the quiet cave has no Shoot")
	assert.Contains(t, out, "Initial state => A11\n")

	_, err = run(t, RunOptions{Options: Options{Name: "atlantis"}})
	assert.ErrorIs(t, err, domain.ErrMazeNotFound)
}

func TestExecute_Report(t *testing.T) {
	out, err := run(t, RunOptions{Word: "c d", Report: true})
	require.NoError(t, err)
	assert.Contains(t, out, "wumpus")
	assert.Contains(t, out, "A22")
}

func TestExecute_PersistsToRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	_, err := run(t, RunOptions{Options: Options{RedisURL: "redis://" + mr.Addr()}})
	require.NoError(t, err)

	store, err := redis.NewFromURL("redis://" + mr.Addr())
	require.NoError(t, err)
	defer store.Close()

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 1)

	rec, err := store.Load(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, rec.Outcome)
}

func TestListMazes(t *testing.T) {
	names, err := ListMazes(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"gauntlet", "quiet", "wumpus"}, names)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toggle.yaml"), []byte(toggleYAML), 0644))
	names, err = ListMazes(context.Background(), Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"toggle"}, names)
}

func TestGraph(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Graph(context.Background(), Options{}, logging.NewNop(), &out))
	assert.True(t, strings.HasPrefix(out.String(), "graph TD\n"))
}

func TestValidate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Validate(context.Background(), Options{}, logging.NewNop(), &out))
	assert.Contains(t, out.String(), "wumpus: 36 states, 6 symbols")
	assert.Contains(t, out.String(), "reachable finals: [B11 D11]")
}

func TestExport(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Export(context.Background(), Options{Name: "quiet"}, logging.NewNop(), "yaml", &out))

	def, err := schema.Parse(out.Bytes(), schema.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "quiet", def.Name)

	a, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, a.Alphabet().Len())

	err = Export(context.Background(), Options{}, logging.NewNop(), "toml", &out)
	assert.ErrorIs(t, err, schema.ErrUnknownFormat)
}

func TestExecute_PersistsToRunsDir(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, RunOptions{Options: Options{RunsDir: dir}, Word: "d d"})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	var rec domain.RunRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, domain.OutcomeTrapped, rec.Outcome)
	assert.Equal(t, "A13", rec.Last())
}
