// internal/domain/sale/entity.go
package sale

import (
	"storefront/internal/domain/catalog"
)

// LineItem is a quantity of one product, either inside a cart (pre-order)
// or inside an order (post-checkout snapshot).
//
// The owning order is referenced by its number (the order's business key),
// not by pointer — ownership runs strictly Order → LineItem.
type LineItem struct {
	ID          int64            `json:"id"`
	Product     *catalog.Product `json:"product"`
	Quantity    int              `json:"quantity"`
	OrderNumber string           `json:"orderNumber,omitempty"`
}

// NewLineItem builds a line item; quantity is clamped to >= 0.
func NewLineItem(p *catalog.Product, quantity int) *LineItem {
	li := &LineItem{Product: p}
	li.SetQuantity(quantity)
	return li
}

// SetProduct replaces the product and resets quantity: 1 for a product,
// 0 when the product is cleared.
func (li *LineItem) SetProduct(p *catalog.Product) {
	li.Product = p
	if p == nil {
		li.Quantity = 0
	} else {
		li.Quantity = 1
	}
}

// SetQuantity clamps to >= 0.
func (li *LineItem) SetQuantity(quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	li.Quantity = quantity
}

// IncrementQuantity adds exactly one.
func (li *LineItem) IncrementQuantity() {
	li.Quantity++
}

// Subtotal is unit price × quantity; 0 when no product is set.
func (li *LineItem) Subtotal() float64 {
	if li == nil || li.Product == nil {
		return 0
	}
	return li.Product.Price * float64(li.Quantity)
}

// SameProduct reports merge equivalence: both items reference products with
// the same business key. Quantity and owning order are ignored.
func (li *LineItem) SameProduct(other *LineItem) bool {
	if li == nil || other == nil || li.Product == nil || other.Product == nil {
		return false
	}
	return li.Product.EqualsKey() == other.Product.EqualsKey()
}

// Clone returns an independent copy with no order binding, used when an
// order snapshots cart contents.
func (li *LineItem) Clone() *LineItem {
	if li == nil {
		return nil
	}
	cp := &LineItem{Quantity: li.Quantity}
	if li.Product != nil {
		p := *li.Product
		cp.Product = &p
	}
	return cp
}
