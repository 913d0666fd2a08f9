package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/catalog"
)

func productA() *catalog.Product {
	return &catalog.Product{ID: 1, Article: 100, Title: "A", URL: "a", Price: 10}
}

func TestSetProductResetsQuantity(t *testing.T) {
	li := NewLineItem(productA(), 5)
	assert.Equal(t, 5, li.Quantity)

	p := &catalog.Product{ID: 2, Article: 200, Title: "B", URL: "b", Price: 5}
	li.SetProduct(p)
	assert.Equal(t, 1, li.Quantity)

	li.SetProduct(nil)
	assert.Equal(t, 0, li.Quantity)
	assert.Zero(t, li.Subtotal())
}

func TestSetQuantityClamps(t *testing.T) {
	li := NewLineItem(productA(), -3)
	assert.Equal(t, 0, li.Quantity)

	li.SetQuantity(4)
	assert.Equal(t, 4, li.Quantity)

	li.SetQuantity(-1)
	assert.Equal(t, 0, li.Quantity)
}

func TestSubtotal(t *testing.T) {
	li := NewLineItem(productA(), 3)
	assert.Equal(t, 30.0, li.Subtotal())

	li.IncrementQuantity()
	assert.Equal(t, 40.0, li.Subtotal())
}

func TestSameProductIgnoresQuantityAndOrder(t *testing.T) {
	a := NewLineItem(productA(), 1)
	b := NewLineItem(productA(), 7)
	b.OrderNumber = "ABC123"
	assert.True(t, a.SameProduct(b))

	c := NewLineItem(&catalog.Product{Article: 999, Title: "C", URL: "c", Price: 1}, 1)
	assert.False(t, a.SameProduct(c))

	var nilItem *LineItem
	assert.False(t, a.SameProduct(nilItem))
	assert.False(t, a.SameProduct(&LineItem{}))
}

func TestCloneIsIndependent(t *testing.T) {
	a := NewLineItem(productA(), 2)
	a.OrderNumber = "ABC123"

	cp := a.Clone()
	assert.Equal(t, 2, cp.Quantity)
	assert.Empty(t, cp.OrderNumber)

	a.Product.Price = 99
	assert.Equal(t, 10.0, cp.Product.Price)
}
