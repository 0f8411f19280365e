package store

import (
	"context"
	"errors"
	"reflect"

	"gorm.io/gorm"

	"github.com/Jlcht/Aurelian-Timeworks/models"
)

// WishlistStore is the gateway to the per-user wishlist documents. Load
// lazily creates an empty document on first access. AddItem has set
// semantics keyed by product id; RemoveItem removes by exact snapshot match,
// since the stored array holds full snapshots, not references.
type WishlistStore interface {
	Load(ctx context.Context, userID string) ([]models.Product, error)
	AddItem(ctx context.Context, userID string, item models.Product) error
	RemoveItem(ctx context.Context, userID string, item models.Product) error
	Clear(ctx context.Context, userID string) error
}

// GormWishlistStore backs WishlistStore with the shared database handle.
type GormWishlistStore struct {
	db *gorm.DB
}

func NewGormWishlistStore(db *gorm.DB) *GormWishlistStore {
	return &GormWishlistStore{db: db}
}

func (s *GormWishlistStore) Load(ctx context.Context, userID string) ([]models.Product, error) {
	wl, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	return append([]models.Product{}, wl.Items...), nil
}

func (s *GormWishlistStore) AddItem(ctx context.Context, userID string, item models.Product) error {
	wl, err := s.fetch(ctx, userID)
	if err != nil {
		return err
	}
	for _, it := range wl.Items {
		if it.ID == item.ID {
			return nil
		}
	}
	wl.Items = append(wl.Items, item)
	return s.db.WithContext(ctx).Save(wl).Error
}

func (s *GormWishlistStore) RemoveItem(ctx context.Context, userID string, item models.Product) error {
	wl, err := s.fetch(ctx, userID)
	if err != nil {
		return err
	}
	kept := wl.Items[:0]
	for _, it := range wl.Items {
		if !reflect.DeepEqual(it, item) {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(wl.Items) {
		return nil
	}
	wl.Items = kept
	return s.db.WithContext(ctx).Save(wl).Error
}

func (s *GormWishlistStore) Clear(ctx context.Context, userID string) error {
	wl, err := s.fetch(ctx, userID)
	if err != nil {
		return err
	}
	wl.Items = models.ProductList{}
	return s.db.WithContext(ctx).Save(wl).Error
}

// fetch returns the user's wishlist document, creating an empty one when it
// does not exist yet.
func (s *GormWishlistStore) fetch(ctx context.Context, userID string) (*models.Wishlist, error) {
	var wl models.Wishlist
	err := s.db.WithContext(ctx).First(&wl, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wl = models.Wishlist{UserID: userID, Items: models.ProductList{}}
		if err := s.db.WithContext(ctx).Create(&wl).Error; err != nil {
			return nil, err
		}
		return &wl, nil
	}
	if err != nil {
		return nil, err
	}
	return &wl, nil
}
