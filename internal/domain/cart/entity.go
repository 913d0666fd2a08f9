// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/domain/sale"
)

var (
	ErrInvalidCart = errors.New("cart: invalid")
)

// DefaultCartTTL is the inactivity window after which the cart becomes
// eligible for auto deletion (Firestore TTL is configured on expiresAt).
const DefaultCartTTL = 7 * 24 * time.Hour

// Cart is the session-scoped collection of line items a customer has
// selected but not yet ordered.
//
// Invariant: at most one line item per distinct product — adding a product
// already present increments that item's quantity instead of inserting a
// duplicate. Insertion order is preserved.
type Cart struct {
	// ID is the session id (store docId in Firestore).
	ID string `json:"id"`

	items []*sale.LineItem

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// ExpiresAt drives Firestore TTL; refreshed on each mutation.
	ExpiresAt time.Time `json:"expiresAt"`
}

// New creates an empty cart for the session.
func New(sessionID string, now time.Time) (*Cart, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrInvalidCart
	}
	return &Cart{
		ID:        sid,
		items:     []*sale.LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(DefaultCartTTL),
	}, nil
}

// Restore rebuilds a cart from stored state (repository use).
func Restore(sessionID string, items []*sale.LineItem, createdAt, updatedAt, expiresAt time.Time) *Cart {
	c := &Cart{
		ID:        strings.TrimSpace(sessionID),
		items:     []*sale.LineItem{},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		ExpiresAt: expiresAt,
	}
	for _, li := range items {
		c.Add(li)
	}
	return c
}

// Add merges the item into the cart: when an equivalent item (same product)
// exists its quantity is incremented by one and the input is discarded,
// otherwise the item is appended. Nil input is a no-op.
func (c *Cart) Add(li *sale.LineItem) {
	if li == nil {
		return
	}
	for _, existing := range c.items {
		if existing.SameProduct(li) {
			existing.IncrementQuantity()
			return
		}
	}
	c.items = append(c.items, li)
}

// AddAll merges each item in order.
func (c *Cart) AddAll(items []*sale.LineItem) {
	for _, li := range items {
		c.Add(li)
	}
}

// Remove drops the first equivalent item (same product); absent item is a
// no-op.
func (c *Cart) Remove(li *sale.LineItem) {
	if li == nil {
		return
	}
	for i, existing := range c.items {
		if existing.SameProduct(li) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = []*sale.LineItem{}
}

// Items returns a read-only view in insertion order.
func (c *Cart) Items() []*sale.LineItem {
	out := make([]*sale.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Price is the sum of line-item subtotals.
func (c *Cart) Price() float64 {
	var sum float64
	for _, li := range c.items {
		sum += li.Subtotal()
	}
	return sum
}

// Size is the total quantity across all items, not the count of distinct
// products.
func (c *Cart) Size() int {
	var size int
	for _, li := range c.items {
		size += li.Quantity
	}
	return size
}

// Touch refreshes UpdatedAt and the TTL basis after a mutation.
func (c *Cart) Touch(now time.Time) {
	c.UpdatedAt = now
	c.ExpiresAt = now.Add(DefaultCartTTL)
}
