package wishlist

import (
	"context"
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/Jlcht/Aurelian-Timeworks/models"
)

// localKey is the single on-device storage key the anonymous wishlist lives
// under. The whole snapshot array is rewritten on every mutation.
const localKey = "wishlist"

// LocalBackend stores the anonymous wishlist in an embedded key-value
// database on the device.
type LocalBackend struct {
	db *badger.DB
}

// OpenLocal opens (or creates) the on-device store at path.
func OpenLocal(path string) (*LocalBackend, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &LocalBackend{db: db}, nil
}

func (b *LocalBackend) Close() error {
	return b.db.Close()
}

func (b *LocalBackend) Load(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	err := b.db.View(func(txn *badger.Txn) error {
		entry, err := txn.Get([]byte(localKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			items = []models.Product{}
			return nil
		}
		if err != nil {
			return err
		}
		raw, err := entry.ValueCopy(nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, &items)
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}

func (b *LocalBackend) Add(ctx context.Context, item models.Product) error {
	items, err := b.Load(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == item.ID {
			return nil
		}
	}
	return b.write(append(items, item))
}

func (b *LocalBackend) Remove(ctx context.Context, item models.Product) error {
	items, err := b.Load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != item.ID {
			kept = append(kept, it)
		}
	}
	return b.write(kept)
}

func (b *LocalBackend) Clear(ctx context.Context) error {
	return b.write([]models.Product{})
}

func (b *LocalBackend) write(items []models.Product) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(localKey), raw)
	})
}
