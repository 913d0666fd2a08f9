// internal/domain/order/status.go
package order

import "strings"

// StatusTitle is the fixed order-workflow vocabulary.
type StatusTitle string

const (
	StatusNew       StatusTitle = "NEW"
	StatusWork      StatusTitle = "WORK"
	StatusDelivery  StatusTitle = "DELIVERY"
	StatusClosed    StatusTitle = "CLOSED"
	StatusRejection StatusTitle = "REJECTION"
)

// StatusTitles lists every status, NEW first (NEW is seeded first and is
// the default for all new orders).
var StatusTitles = []StatusTitle{StatusNew, StatusWork, StatusDelivery, StatusClosed, StatusRejection}

// Status is a persisted workflow state. One status has many orders.
//
// There is no transition table: any authorized actor may set any status.
type Status struct {
	ID          int64       `json:"id"`
	Title       StatusTitle `json:"title"`
	Description string      `json:"description"`
}

// NewStatus builds a status row, null-coalescing the description.
func NewStatus(title StatusTitle, description string) Status {
	return Status{Title: title, Description: strings.TrimSpace(description)}
}

// IsDefault reports whether this is the NEW status — the initial state of
// every order and the "unassigned" sentinel that clears manager bindings.
func (s Status) IsDefault() bool {
	return s.Title == StatusNew
}
