// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain/common"
	"storefront/internal/domain/sale"
	"storefront/internal/domain/user"
)

// Order is a finalized purchase request: a snapshot of cart line items plus
// client, optional handling manager, workflow status and shipping metadata.
//
// The human-readable number is the business equality key; Price is always
// recomputed from the owned line items, never stored.
type Order struct {
	ID              int64  `json:"id"`
	Number          string `json:"number"`
	Date            string `json:"date"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingDetails string `json:"shippingDetails"`
	Description     string `json:"description"`

	Status  Status     `json:"status"`
	Client  *user.User `json:"client"`
	Manager *user.User `json:"manager,omitempty"`

	items []*sale.LineItem
}

// New creates an order at checkout: fresh random number, modification date
// now, empty shipping fields, the given status/client, and its own copies
// of the line items.
func New(status Status, client *user.User, items []*sale.LineItem, now time.Time) *Order {
	o := &Order{
		Number: common.RandomCode(),
		Date:   common.FormatDate(now),
		Status: status,
		Client: client,
		items:  []*sale.LineItem{},
	}
	o.AddLineItems(items)
	return o
}

// Restore rebuilds an order from stored state (repository use). Back-
// references on the items are re-stamped to the stored number.
func Restore(id int64, number, date, shippingAddress, shippingDetails, description string,
	status Status, client, manager *user.User, items []*sale.LineItem) *Order {
	o := &Order{
		ID:              id,
		Number:          strings.TrimSpace(number),
		Date:            date,
		ShippingAddress: shippingAddress,
		ShippingDetails: shippingDetails,
		Description:     description,
		Status:          status,
		Client:          client,
		Manager:         manager,
		items:           []*sale.LineItem{},
	}
	o.AddLineItems(items)
	return o
}

// EqualsKey is the business equality key: the order number.
func (o *Order) EqualsKey() string {
	return o.Number
}

// Initialize is the bulk field replace used by the update-order workflow.
// String fields null-coalesce to ""; the zero date renders as "".
func (o *Order) Initialize(number string, date time.Time, shippingAddress, shippingDetails,
	description string, status Status, client, manager *user.User) {
	o.SetNumber(number)
	o.SetDate(date)
	o.SetShippingAddress(shippingAddress)
	o.SetShippingDetails(shippingDetails)
	o.SetDescription(description)
	o.Status = status
	o.Client = client
	o.Manager = manager
}

// AddLineItem appends the item, binding its back-reference to this order
// when it does not already point here.
func (o *Order) AddLineItem(li *sale.LineItem) {
	if li == nil {
		return
	}
	o.items = append(o.items, li)
	if li.OrderNumber != o.Number {
		li.OrderNumber = o.Number
	}
}

// AddLineItems appends each item, maintaining the back-reference invariant.
func (o *Order) AddLineItems(items []*sale.LineItem) {
	for _, li := range items {
		o.AddLineItem(li)
	}
}

// RemoveLineItem drops the first equivalent item; absent item is a no-op.
func (o *Order) RemoveLineItem(li *sale.LineItem) {
	if li == nil {
		return
	}
	for i, existing := range o.items {
		if existing.SameProduct(li) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return
		}
	}
}

// ClearLineItems empties the order's line items.
func (o *Order) ClearLineItems() {
	o.items = []*sale.LineItem{}
}

// Items returns a read-only view in insertion order.
func (o *Order) Items() []*sale.LineItem {
	out := make([]*sale.LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Price is the sum of the owned line items' subtotals, recomputed on every
// call.
func (o *Order) Price() float64 {
	var sum float64
	for _, li := range o.items {
		sum += li.Subtotal()
	}
	return sum
}

// RegenerateNumber replaces the number with a fresh random code and
// re-stamps the owned items' back-references.
func (o *Order) RegenerateNumber() {
	o.Number = common.RandomCode()
	for _, li := range o.items {
		li.OrderNumber = o.Number
	}
}

// SetNumber null-coalesces to "" and re-stamps owned items.
func (o *Order) SetNumber(number string) {
	o.Number = strings.TrimSpace(number)
	for _, li := range o.items {
		li.OrderNumber = o.Number
	}
}

// SetDate stores the formatted modification date; the zero time yields "".
func (o *Order) SetDate(date time.Time) {
	if date.IsZero() {
		o.Date = ""
		return
	}
	o.Date = common.FormatDate(date)
}

func (o *Order) SetShippingAddress(s string) { o.ShippingAddress = strings.TrimSpace(s) }
func (o *Order) SetShippingDetails(s string) { o.ShippingDetails = strings.TrimSpace(s) }
func (o *Order) SetDescription(s string)     { o.Description = strings.TrimSpace(s) }

// Summary renders the order as the plain text handed to the notification
// channel: number, status, date, client contact, manager, shipping info and
// the priced position list.
func (o *Order) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, %s,\n%s", o.Number, o.Status.Description, o.Date)

	if o.Client != nil {
		fmt.Fprintf(&sb, "\n\nClient: %s\ne-mail: %s\nphone: %s\n", o.Client.Name, o.Client.Email, o.Client.Phone)
	}
	if o.Manager != nil {
		fmt.Fprintf(&sb, "\n%s %s\n", o.Manager.Role.Description, o.Manager.Name)
	}
	if o.ShippingAddress != "" {
		fmt.Fprintf(&sb, "\nShipping address: %s", o.ShippingAddress)
	}
	if o.ShippingDetails != "" {
		fmt.Fprintf(&sb, "\nShipping details: %s", o.ShippingDetails)
	}
	if o.Description != "" {
		fmt.Fprintf(&sb, "\nDescription: %s", o.Description)
	}

	if len(o.items) > 0 {
		sb.WriteString("\nSale positions: ")
		for i, li := range o.items {
			title, id, price := "", int64(0), 0.0
			if li.Product != nil {
				title, id, price = li.Product.Title, li.Product.ID, li.Product.Price
			}
			fmt.Fprintf(&sb, "\n%d) %s, No %d,\n%d x %v = %v UAH;", i+1, title, id, li.Quantity, price, li.Subtotal())
		}
		fmt.Fprintf(&sb, "\n\nPRICE = %v UAH", o.Price())
	}
	return sb.String()
}
