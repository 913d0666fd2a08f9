// internal/domain/order/policy.go
package order

import (
	"time"

	"storefront/internal/domain/user"
)

// Actor is the authenticated staff member performing an order mutation.
type Actor struct {
	ID   int64
	Role user.RoleTitle
}

// Update carries the full field replace of the update-order workflow.
// Manager is the candidate binding — the acting staff member's user row.
type Update struct {
	Number          string
	Date            time.Time
	ShippingAddress string
	ShippingDetails string
	Description     string
	Status          Status

	ClientName  string
	ClientEmail string
	ClientPhone string

	Manager *user.User
}

// CanEdit reports whether the actor may open the order for editing:
// administrators always, managers only while the order is unassigned or
// assigned to themselves, everyone else never.
func CanEdit(actor Actor, o *Order) bool {
	switch actor.Role {
	case user.RoleAdministrator:
		return true
	case user.RoleManager:
		return o.Manager == nil || o.Manager.ID == actor.ID
	default:
		return false
	}
}

// ApplyUpdate runs the role-gated mutation:
//
//   - ADMINISTRATOR: the status and the candidate manager are applied
//     unconditionally.
//   - MANAGER: the update is skipped entirely unless the order is unassigned
//     or assigned to the actor. When applied, setting the default (NEW)
//     status clears the manager binding; any other status binds the
//     candidate manager.
//   - Any other role never mutates.
//
// A skipped update mutates nothing and signals no error to the client —
// the returned bool only lets callers log the skip.
func ApplyUpdate(actor Actor, o *Order, upd Update) bool {
	if !CanEdit(actor, o) {
		return false
	}

	manager := upd.Manager
	if actor.Role == user.RoleManager && upd.Status.IsDefault() {
		manager = nil
	}

	if o.Client != nil {
		o.Client.SetContact(upd.ClientName, upd.ClientEmail, upd.ClientPhone)
	}
	o.Initialize(upd.Number, upd.Date, upd.ShippingAddress, upd.ShippingDetails,
		upd.Description, upd.Status, o.Client, manager)
	return true
}
