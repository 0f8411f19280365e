package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jlcht/Aurelian-Timeworks/models"
)

func TestMemoryWishlistStoreRemoveItem(t *testing.T) {
	ctx := context.Background()
	wishlists := NewMemoryWishlistStore()

	stored := models.Product{ID: "p-1", Name: "Chronograph", Price: 249.99, Stock: 5}
	require.NoError(t, wishlists.AddItem(ctx, "user-1", stored))

	t.Run("stale snapshot removes nothing", func(t *testing.T) {
		stale := stored
		stale.Price = 199.99
		require.NoError(t, wishlists.RemoveItem(ctx, "user-1", stale))

		items, err := wishlists.Load(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, []models.Product{stored}, items)
	})

	t.Run("exact snapshot removes the item", func(t *testing.T) {
		require.NoError(t, wishlists.RemoveItem(ctx, "user-1", stored))

		items, err := wishlists.Load(ctx, "user-1")
		require.NoError(t, err)
		require.Empty(t, items)
	})
}
