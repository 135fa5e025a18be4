package loam

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corridorJSON = `{
  "name": "corridor",
  "alphabet": [{"name": "Right", "aliases": ["d"]}],
  "states": ["S0", "S1"],
  "initial": "S0",
  "finals": ["S1"],
  "transitions": {
    "S0": {"default": "S1"},
    "S1": {"default": "S1"}
  }
}`

func writeMazes(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLibrary_GetBuildsAutomaton(t *testing.T) {
	dir := writeMazes(t, map[string]string{"corridor.json": corridorJSON})

	lib, err := Open(dir)
	require.NoError(t, err)

	def, err := lib.Get(context.Background(), "corridor")
	require.NoError(t, err)
	assert.Equal(t, "corridor", def.Name)
	assert.Equal(t, []string{"S0", "S1"}, def.States)

	a, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, "S0", a.States().Name(a.Initial()))
}

func TestLibrary_NameDefaultsToFileID(t *testing.T) {
	dir := writeMazes(t, map[string]string{
		"unnamed.json": `{"alphabet": [{"name": "x"}], "states": ["q"], "initial": "q"}`,
	})

	lib, err := Open(dir)
	require.NoError(t, err)

	def, err := lib.Get(context.Background(), "unnamed")
	require.NoError(t, err)
	assert.Equal(t, "unnamed", def.Name)
}

func TestLibrary_List(t *testing.T) {
	dir := writeMazes(t, map[string]string{
		"corridor.json": corridorJSON,
		"another.json":  `{"name": "another", "alphabet": [{"name": "x"}], "states": ["q"], "initial": "q"}`,
	})

	lib, err := Open(dir)
	require.NoError(t, err)

	names, err := lib.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"another", "corridor"}, names)
}

func TestLibrary_GetMissing(t *testing.T) {
	lib, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = lib.Get(context.Background(), "nowhere")
	assert.ErrorIs(t, err, domain.ErrMazeNotFound)
}

func TestLibrary_GetRejectsUnknownKeys(t *testing.T) {
	dir := writeMazes(t, map[string]string{
		"typo.json": `{"name": "typo", "alphabet": [{"name": "x"}], "states": ["q", "f"], "initial": "q", "finale": ["f"]}`,
	})

	lib, err := Open(dir)
	require.NoError(t, err)

	_, err = lib.Get(context.Background(), "typo")
	require.Error(t, err)
	assert.ErrorContains(t, err, "finale")
	assert.NotErrorIs(t, err, domain.ErrMazeNotFound)
}
