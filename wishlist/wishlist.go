// Package wishlist keeps a user's favorited products across two backing
// stores: the remote per-user document for signed-in sessions and an
// on-device store for anonymous ones.
package wishlist

import (
	"context"
	"log"
	"sync"

	"github.com/Jlcht/Aurelian-Timeworks/models"
)

// Backend is one backing store for the container. Implementations exist for
// the remote wishlist document and for local on-device storage.
type Backend interface {
	Load(ctx context.Context) ([]models.Product, error)
	Add(ctx context.Context, item models.Product) error
	Remove(ctx context.Context, item models.Product) error
	Clear(ctx context.Context) error
}

// Container is the session wishlist. It starts anonymous on the local
// backend; SignIn switches to the remote backend for that subject and
// SignOut switches back. Items favorited while anonymous are NOT merged
// into the remote document on sign-in; they stay in local storage.
type Container struct {
	mu      sync.Mutex
	local   Backend
	remote  func(userID string) Backend
	backend Backend
	userID  string
	items   []models.Product
}

// NewContainer builds an anonymous container. remote constructs the backend
// for a signed-in subject id.
func NewContainer(local Backend, remote func(userID string) Backend) *Container {
	return &Container{local: local, remote: remote, backend: local}
}

// Open loads the current backend's items, used once at session start.
func (c *Container) Open(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reload(ctx)
}

// SignIn switches to the subject's remote document and loads it, creating an
// empty one if absent. Anything in the anonymous store is left behind.
func (c *Container) SignIn(ctx context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = userID
	c.backend = c.remote(userID)
	c.reload(ctx)
}

// SignOut returns to the anonymous local store.
func (c *Container) SignOut(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = ""
	c.backend = c.local
	c.reload(ctx)
}

// reload refreshes items from the active backend. A failed load leaves the
// session with an empty view rather than failing the session switch.
// Caller holds the lock.
func (c *Container) reload(ctx context.Context) {
	items, err := c.backend.Load(ctx)
	if err != nil {
		log.Printf("❌ Failed to load wishlist: %v", err)
		items = []models.Product{}
	}
	c.items = items
}

// Toggle removes the product when present and adds it when absent.
func (c *Container) Toggle(ctx context.Context, p models.Product) {
	if c.Contains(p.ID) {
		c.Remove(ctx, p.ID)
	} else {
		c.Add(ctx, p)
	}
}

// Add favorites the product. A backend failure is logged and the in-memory
// view is left unchanged, so the view never shows an item the store lost.
func (c *Container) Add(ctx context.Context, p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ID == p.ID {
			return
		}
	}
	if err := c.backend.Add(ctx, p); err != nil {
		log.Printf("❌ Failed to add to wishlist: %v", err)
		return
	}
	c.items = append(c.items, p)
}

// Remove unfavorites by id. The stored snapshot is resolved first because
// the remote array removal matches exact values, not ids.
func (c *Container) Remove(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := -1
	for i, it := range c.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if err := c.backend.Remove(ctx, c.items[idx]); err != nil {
		log.Printf("❌ Failed to remove from wishlist: %v", err)
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}

// Clear empties the active backing store.
func (c *Container) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.backend.Clear(ctx); err != nil {
		log.Printf("❌ Failed to clear wishlist: %v", err)
		return
	}
	c.items = nil
}

// Contains reports membership by product id.
func (c *Container) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the current view.
func (c *Container) Items() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Product{}, c.items...)
}
