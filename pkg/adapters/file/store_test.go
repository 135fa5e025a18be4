package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/labyrinth/pkg/adapters/file"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunRunStoreContract(t, store)
}

func TestFileStore_MissingDirectoryListsNothing(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "not-yet"))

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	run := &domain.RunRecord{ID: "r1", Outcome: domain.OutcomeTrapped, CreatedAt: time.Now()}
	require.NoError(t, store.Save(ctx, run))
	run.Outcome = domain.OutcomeAccepted
	require.NoError(t, store.Save(ctx, run))

	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, loaded.Outcome)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFileStore_RejectsPathIDs(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, &domain.RunRecord{ID: "../escape"}))
	assert.Error(t, store.Save(ctx, &domain.RunRecord{}))

	_, err := store.Load(ctx, "../escape")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestFileStore_DefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".labyrinth", "runs"), file.New("").BasePath)
}
