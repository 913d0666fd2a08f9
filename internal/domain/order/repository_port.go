// internal/domain/order/repository_port.go
package order

import (
	"context"
	"errors"
)

// Repository is the persistence port for Order.
//
// Save wraps the whole logical mutation (order row + client contact row) in
// one transaction; concurrent edits resolve last-write-wins.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Order, error)
	GetByNumber(ctx context.Context, number string) (*Order, error)
	GetAll(ctx context.Context) ([]*Order, error)

	// Save inserts when o.ID == 0, otherwise updates. Returns the stored row.
	Save(ctx context.Context, o *Order) (*Order, error)
	Delete(ctx context.Context, id int64) error
	DeleteByNumber(ctx context.Context, number string) error
	DeleteAll(ctx context.Context) error
}

// StatusRepository is the persistence port for Status rows.
//
// Delete refuses while orders still reference the status; the cascade is an
// explicit opt-in via DeleteWithOrders.
type StatusRepository interface {
	GetStatusByID(ctx context.Context, id int64) (Status, error)
	GetByTitle(ctx context.Context, title StatusTitle) (Status, error)
	GetAllStatuses(ctx context.Context) ([]Status, error)

	SaveStatus(ctx context.Context, s Status) (Status, error)
	DeleteStatus(ctx context.Context, id int64) error
	DeleteStatusWithOrders(ctx context.Context, id int64) error
}

var (
	ErrNotFound       = errors.New("order: not found")
	ErrStatusNotFound = errors.New("order: status not found")
	ErrStatusInUse    = errors.New("order: status still referenced by orders")
)
