// Package cart holds a session-scoped shopping cart. Entries snapshot the
// product at add time; quantities are clamped to the snapshotted stock.
package cart

import (
	"sync"

	"github.com/Jlcht/Aurelian-Timeworks/models"
)

// Item is a cart entry: a product snapshot plus its quantity.
type Item struct {
	ProductID string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Stock     int      `json:"stock"`
	Images    []string `json:"images"`
	Quantity  int      `json:"quantity"`
}

// Cart is an in-memory container. It is not persisted; a new session starts
// empty.
type Cart struct {
	mu    sync.Mutex
	items []*Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the cart. A repeated add increments
// the existing entry's quantity, never past the product's stock. A product
// with zero stock is inserted with quantity zero; callers are expected to
// disable the add path at stock zero.
func (c *Cart) Add(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ProductID == p.ID {
			if it.Quantity < it.Stock {
				it.Quantity++
			}
			return
		}
	}
	qty := 1
	if p.Stock < 1 {
		qty = 0
	}
	c.items = append(c.items, &Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Images:    append([]string{}, p.Images...),
		Quantity:  qty,
	})
}

// UpdateQuantity sets the entry's quantity when 1 <= n <= stock. Anything
// else, including an unknown id, is silently ignored.
func (c *Cart) UpdateQuantity(id string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ProductID == id {
			if n >= 1 && n <= it.Stock {
				it.Quantity = n
			}
			return
		}
	}
}

// Remove deletes the entry; absent ids are a no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.ProductID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Total is the sum of price times quantity over all entries.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count is the sum of quantities, not the number of distinct entries.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var count int
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Items returns a copy of the entries in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]Item, len(c.items))
	for i, it := range c.items {
		cp[i] = *it
	}
	return cp
}
