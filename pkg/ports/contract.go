package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRunStoreContract runs a suite of tests to verify that a RunStore implementation
// adheres to the defined interface contract.
func RunRunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	prefix := "contract-run-" + time.Now().Format("20060102150405")

	record := func(id string, offset time.Duration) *domain.RunRecord {
		return &domain.RunRecord{
			ID:        id,
			Automaton: "wumpus",
			Word:      []string{"c", "d", "p", "b", "e"},
			Trace:     []string{"A21", "A22", "B22", "B12", "B11"},
			Outcome:   domain.OutcomeAccepted,
			CreatedAt: base.Add(offset),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		id := prefix + "-save"
		run := record(id, 0)
		require.NoError(t, store.Save(ctx, run), "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, run.Word, loaded.Word)
		assert.Equal(t, run.Trace, loaded.Trace)
		assert.Equal(t, run.Outcome, loaded.Outcome)
		assert.False(t, loaded.Halted)
		assert.True(t, run.CreatedAt.Equal(loaded.CreatedAt))
		assert.Equal(t, "B11", loaded.Last())

		loaded.Trace[0] = "mutated"
		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "A21", again.Trace[0], "loaded records are copies")

		_ = store.Delete(ctx, id)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+prefix)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		id := prefix + "-delete"
		require.NoError(t, store.Save(ctx, record(id, 0)))

		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotContains(t, ids, id)

		assert.NoError(t, store.Delete(ctx, id), "deleting twice is fine")
	})

	t.Run("List Oldest First", func(t *testing.T) {
		late, early := prefix+"-late", prefix+"-early"
		require.NoError(t, store.Save(ctx, record(late, time.Minute)))
		require.NoError(t, store.Save(ctx, record(early, 0)))
		defer func() {
			_ = store.Delete(ctx, late)
			_ = store.Delete(ctx, early)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		require.Contains(t, ids, early)
		require.Contains(t, ids, late)

		var ei, li int
		for i, id := range ids {
			switch id {
			case early:
				ei = i
			case late:
				li = i
			}
		}
		assert.Less(t, ei, li)
	})
}
