// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	orderdom "storefront/internal/domain/order"
	userdom "storefront/internal/domain/user"
)

var (
	ErrOrderInvalidArgument = errors.New("order_usecase: invalid argument")
	ErrOrderNotFound        = errors.New("order_usecase: not found")
	ErrOrderForbidden       = errors.New("order_usecase: role may not touch orders")
)

// OrderUpdateInput is the console form payload for the update workflow.
type OrderUpdateInput struct {
	Number          string
	StatusID        int64
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	ShippingAddress string
	ShippingDetails string
	Description     string
}

// OrderUsecase serves the console (manager/administrator) order operations.
type OrderUsecase struct {
	orders   orderdom.Repository
	statuses orderdom.StatusRepository
	users    userdom.Repository
	clock    Clock
}

func NewOrderUsecase(orders orderdom.Repository, statuses orderdom.StatusRepository,
	users userdom.Repository) *OrderUsecase {
	return &OrderUsecase{orders: orders, statuses: statuses, users: users, clock: systemClock{}}
}

// NewOrderUsecaseWithClock is useful for tests.
func NewOrderUsecaseWithClock(orders orderdom.Repository, statuses orderdom.StatusRepository,
	users userdom.Repository, clock Clock) *OrderUsecase {
	uc := NewOrderUsecase(orders, statuses, users)
	if clock != nil {
		uc.clock = clock
	}
	return uc
}

// Get returns the order by storage id.
func (uc *OrderUsecase) Get(ctx context.Context, id int64) (*orderdom.Order, error) {
	if id == 0 {
		return nil, ErrOrderInvalidArgument
	}
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// GetByNumber returns the order by its human-readable number.
func (uc *OrderUsecase) GetByNumber(ctx context.Context, number string) (*orderdom.Order, error) {
	n := strings.TrimSpace(number)
	if n == "" {
		return nil, ErrOrderInvalidArgument
	}
	o, err := uc.orders.GetByNumber(ctx, n)
	if err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// GetAll lists every order.
func (uc *OrderUsecase) GetAll(ctx context.Context) ([]*orderdom.Order, error) {
	return uc.orders.GetAll(ctx)
}

// CanEdit reports whether the actor may open the order's edit form.
func (uc *OrderUsecase) CanEdit(ctx context.Context, actor orderdom.Actor, id int64) (bool, error) {
	o, err := uc.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return orderdom.CanEdit(actor, o), nil
}

// Update runs the role-gated full field replace. The candidate manager
// binding is the acting user's own row — the form always submits the
// authenticated staff member as the handler.
//
// An update skipped by the ownership guard is NOT an error: the order is
// returned unchanged, exactly as the source system redirected back to the
// view page. The skip is logged.
func (uc *OrderUsecase) Update(ctx context.Context, actor orderdom.Actor, id int64, in OrderUpdateInput) (*orderdom.Order, error) {
	if id == 0 {
		return nil, ErrOrderInvalidArgument
	}
	if actor.Role != userdom.RoleAdministrator && actor.Role != userdom.RoleManager {
		return nil, ErrOrderForbidden
	}

	o, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := uc.statuses.GetStatusByID(ctx, in.StatusID)
	if err != nil {
		if errors.Is(err, orderdom.ErrStatusNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	manager, err := uc.users.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, userdom.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	applied := orderdom.ApplyUpdate(actor, o, orderdom.Update{
		Number:          in.Number,
		Date:            uc.clock.Now(),
		ShippingAddress: in.ShippingAddress,
		ShippingDetails: in.ShippingDetails,
		Description:     in.Description,
		Status:          status,
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		Manager:         &manager,
	})
	if !applied {
		log.Printf("[order_usecase] update skipped order=%d actor=%d role=%s (owned by another manager)",
			id, actor.ID, actor.Role)
		return o, nil
	}

	return uc.orders.Save(ctx, o)
}

// Delete removes the order by id.
func (uc *OrderUsecase) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrOrderInvalidArgument
	}
	if err := uc.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// DeleteByNumber removes the order by number.
func (uc *OrderUsecase) DeleteByNumber(ctx context.Context, number string) error {
	n := strings.TrimSpace(number)
	if n == "" {
		return ErrOrderInvalidArgument
	}
	if err := uc.orders.DeleteByNumber(ctx, n); err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// DeleteAll removes every order (admin console).
func (uc *OrderUsecase) DeleteAll(ctx context.Context) error {
	return uc.orders.DeleteAll(ctx)
}
