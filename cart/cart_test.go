package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jlcht/Aurelian-Timeworks/models"
)

func product(id string, price float64, stock int) models.Product {
	return models.Product{ID: id, Name: "Watch " + id, Price: price, Stock: stock}
}

func TestAdd(t *testing.T) {
	t.Run("repeated adds merge into one entry", func(t *testing.T) {
		c := New()
		p := product("p1", 9.99, 5)
		c.Add(p)
		c.Add(p)
		items := c.Items()
		require.Len(t, items, 1)
		require.Equal(t, 2, items[0].Quantity)
	})

	t.Run("quantity clamps at stock", func(t *testing.T) {
		c := New()
		p := product("p1", 9.99, 5)
		for i := 0; i < 6; i++ {
			c.Add(p)
		}
		items := c.Items()
		require.Len(t, items, 1)
		require.Equal(t, 5, items[0].Quantity)
	})

	t.Run("zero stock inserts a zero-quantity entry", func(t *testing.T) {
		c := New()
		c.Add(product("p1", 9.99, 0))
		items := c.Items()
		require.Len(t, items, 1)
		require.Equal(t, 0, items[0].Quantity)
		c.Add(product("p1", 9.99, 0))
		require.Equal(t, 0, c.Items()[0].Quantity)
	})
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.Add(product("p1", 10, 4))

	t.Run("valid quantity is applied", func(t *testing.T) {
		c.UpdateQuantity("p1", 3)
		require.Equal(t, 3, c.Items()[0].Quantity)
	})

	t.Run("zero is silently ignored", func(t *testing.T) {
		c.UpdateQuantity("p1", 0)
		require.Equal(t, 3, c.Items()[0].Quantity)
	})

	t.Run("above stock is silently ignored", func(t *testing.T) {
		c.UpdateQuantity("p1", 5)
		require.Equal(t, 3, c.Items()[0].Quantity)
	})

	t.Run("unknown id is silently ignored", func(t *testing.T) {
		c.UpdateQuantity("nope", 2)
		require.Len(t, c.Items(), 1)
	})
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.Add(product("p1", 10, 2))
	c.Add(product("p2", 20, 2))

	c.Remove("p1")
	require.Len(t, c.Items(), 1)
	require.Equal(t, "p2", c.Items()[0].ProductID)

	c.Remove("p1") // absent, no-op
	require.Len(t, c.Items(), 1)

	c.Clear()
	require.Empty(t, c.Items())
}

func TestTotals(t *testing.T) {
	c := New()
	c.Add(product("p1", 9.99, 5))
	c.Add(product("p1", 9.99, 5))
	c.Add(product("p2", 100, 3))
	c.UpdateQuantity("p2", 3)

	require.InDelta(t, 2*9.99+3*100, c.Total(), 1e-9)
	require.Equal(t, 5, c.Count())
}
