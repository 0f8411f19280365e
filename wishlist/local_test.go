package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := OpenLocal(dir)
	require.NoError(t, err)

	t.Run("empty store loads an empty list", func(t *testing.T) {
		items, err := backend.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, items)
	})

	t.Run("add, dedup and remove", func(t *testing.T) {
		require.NoError(t, backend.Add(ctx, product("p1")))
		require.NoError(t, backend.Add(ctx, product("p2")))
		require.NoError(t, backend.Add(ctx, product("p1")))

		items, err := backend.Load(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)

		require.NoError(t, backend.Remove(ctx, product("p1")))
		items, err = backend.Load(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "p2", items[0].ID)
	})

	t.Run("survives close and reopen", func(t *testing.T) {
		require.NoError(t, backend.Close())

		reopened, err := OpenLocal(dir)
		require.NoError(t, err)
		defer reopened.Close()

		items, err := reopened.Load(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "p2", items[0].ID)

		require.NoError(t, reopened.Clear(ctx))
		items, err = reopened.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, items)
	})
}
