package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/sale"
)

var now = time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

func prodA() *catalog.Product {
	return &catalog.Product{ID: 1, Article: 100, Title: "A", URL: "a", Price: 10}
}

func prodB() *catalog.Product {
	return &catalog.Product{ID: 2, Article: 200, Title: "B", URL: "b", Price: 5}
}

func newCart(t *testing.T) *Cart {
	t.Helper()
	c, err := New("session-1", now)
	require.NoError(t, err)
	return c
}

func TestNewRequiresSessionID(t *testing.T) {
	_, err := New("  ", now)
	assert.ErrorIs(t, err, ErrInvalidCart)
}

func TestAddMergesDuplicateProduct(t *testing.T) {
	c := newCart(t)

	c.Add(sale.NewLineItem(prodA(), 1))
	c.Add(sale.NewLineItem(prodA(), 1))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, c.Size())
}

func TestAddNilIsNoop(t *testing.T) {
	c := newCart(t)
	c.Add(nil)
	assert.Empty(t, c.Items())
}

func TestPriceAndSizeAdditivity(t *testing.T) {
	c := newCart(t)
	c.Add(sale.NewLineItem(prodA(), 1))

	b := sale.NewLineItem(prodB(), 1)
	b.SetQuantity(3)
	c.Add(b)

	// A: 10 x 1, B: 5 x 3
	assert.Equal(t, 25.0, c.Price())
	assert.Equal(t, 4, c.Size())
	assert.Len(t, c.Items(), 2)
}

func TestRemove(t *testing.T) {
	c := newCart(t)
	c.Add(sale.NewLineItem(prodA(), 1))
	c.Add(sale.NewLineItem(prodB(), 1))

	c.Remove(sale.NewLineItem(prodA(), 1))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Product.Title)

	// removing an absent item is a no-op
	c.Remove(sale.NewLineItem(prodA(), 1))
	assert.Len(t, c.Items(), 1)
	c.Remove(nil)
	assert.Len(t, c.Items(), 1)
}

func TestClear(t *testing.T) {
	c := newCart(t)
	c.Add(sale.NewLineItem(prodA(), 1))
	c.Clear()
	assert.Empty(t, c.Items())
	assert.Zero(t, c.Price())
	assert.Zero(t, c.Size())
}

func TestItemsIsInsertionOrderedView(t *testing.T) {
	c := newCart(t)
	c.Add(sale.NewLineItem(prodB(), 1))
	c.Add(sale.NewLineItem(prodA(), 1))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].Product.Title)
	assert.Equal(t, "A", items[1].Product.Title)

	// mutating the returned slice must not affect the cart
	items[0] = nil
	assert.NotNil(t, c.Items()[0])
}

func TestTouchRefreshesTTL(t *testing.T) {
	c := newCart(t)
	later := now.Add(time.Hour)
	c.Touch(later)
	assert.Equal(t, later, c.UpdatedAt)
	assert.Equal(t, later.Add(DefaultCartTTL), c.ExpiresAt)
}
