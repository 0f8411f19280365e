package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jlcht/Aurelian-Timeworks/store"
)

func TestRemoteBackend(t *testing.T) {
	ctx := context.Background()
	wishlists := store.NewMemoryWishlistStore()

	t.Run("first load lazily creates an empty document", func(t *testing.T) {
		backend := NewRemoteBackend(wishlists, "user-1")
		items, err := backend.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, items)
	})

	t.Run("documents are per subject", func(t *testing.T) {
		one := NewRemoteBackend(wishlists, "user-1")
		two := NewRemoteBackend(wishlists, "user-2")

		require.NoError(t, one.Add(ctx, product("p1")))

		items, err := two.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, items)

		items, err = one.Load(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("set semantics by product id", func(t *testing.T) {
		backend := NewRemoteBackend(wishlists, "user-3")
		require.NoError(t, backend.Add(ctx, product("p1")))
		require.NoError(t, backend.Add(ctx, product("p1")))

		items, err := backend.Load(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)

		require.NoError(t, backend.Remove(ctx, product("p1")))
		items, err = backend.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, items)
	})

	t.Run("clear empties the document", func(t *testing.T) {
		backend := NewRemoteBackend(wishlists, "user-4")
		require.NoError(t, backend.Add(ctx, product("p1")))
		require.NoError(t, backend.Add(ctx, product("p2")))
		require.NoError(t, backend.Clear(ctx))

		items, err := backend.Load(ctx)
		require.NoError(t, err)
		require.Empty(t, items)
	})
}
