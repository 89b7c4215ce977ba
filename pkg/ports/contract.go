package ports

import (
	"context"
	"testing"

	"github.com/okanara/markov/pkg/chain"
	"github.com/okanara/markov/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests verifying that a RunStore
// implementation adheres to the interface contract. Adapter tests call this
// against their own backend.
func RunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()

	newRun := func() *domain.RunRecord {
		run := domain.NewRunRecord("coin-toss", "heads", 3, 42)
		run.Observe(chain.Trajectory{"tails", "tails", "heads"})
		return run
	}

	t.Run("Save and Load", func(t *testing.T) {
		run := newRun()
		require.NoError(t, store.Save(ctx, run))

		loaded, err := store.Load(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.ID, loaded.ID)
		assert.Equal(t, run.Chain, loaded.Chain)
		assert.Equal(t, chain.State("heads"), loaded.Start)
		assert.Equal(t, chain.State("heads"), loaded.Final)
		assert.Equal(t, 2, loaded.Counts["tails"])
		assert.Equal(t, int64(42), loaded.Seed)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "no-such-run")
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		run := newRun()
		require.NoError(t, store.Save(ctx, run))
		require.NoError(t, store.Delete(ctx, run.ID))

		_, err := store.Load(ctx, run.ID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should miss")

		// Deleting twice is not an error.
		assert.NoError(t, store.Delete(ctx, run.ID))
	})

	t.Run("List", func(t *testing.T) {
		a, b := newRun(), newRun()
		require.NoError(t, store.Save(ctx, a))
		require.NoError(t, store.Save(ctx, b))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, a.ID)
		assert.Contains(t, ids, b.ID)
	})
}
