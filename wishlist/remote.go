package wishlist

import (
	"context"

	"github.com/Jlcht/Aurelian-Timeworks/models"
	"github.com/Jlcht/Aurelian-Timeworks/store"
)

// remoteBackend binds a wishlist store to one subject's document.
type remoteBackend struct {
	store  store.WishlistStore
	userID string
}

// NewRemoteBackend returns the backend for a signed-in subject. Load lazily
// creates the document on first access.
func NewRemoteBackend(s store.WishlistStore, userID string) Backend {
	return &remoteBackend{store: s, userID: userID}
}

func (b *remoteBackend) Load(ctx context.Context) ([]models.Product, error) {
	return b.store.Load(ctx, b.userID)
}

func (b *remoteBackend) Add(ctx context.Context, item models.Product) error {
	return b.store.AddItem(ctx, b.userID, item)
}

func (b *remoteBackend) Remove(ctx context.Context, item models.Product) error {
	return b.store.RemoveItem(ctx, b.userID, item)
}

func (b *remoteBackend) Clear(ctx context.Context) error {
	return b.store.Clear(ctx, b.userID)
}
