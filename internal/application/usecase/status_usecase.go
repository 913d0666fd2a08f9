// internal/application/usecase/status_usecase.go
package usecase

import (
	"context"
	"errors"

	orderdom "storefront/internal/domain/order"
)

var (
	ErrStatusInvalidArgument = errors.New("status_usecase: invalid argument")
	ErrStatusNotFound        = errors.New("status_usecase: not found")
)

// statusDescriptions seeds the human descriptions for the fixed vocabulary.
var statusDescriptions = map[orderdom.StatusTitle]string{
	orderdom.StatusNew:       "New order",
	orderdom.StatusWork:      "Order in work",
	orderdom.StatusDelivery:  "Order in delivery",
	orderdom.StatusClosed:    "Order closed",
	orderdom.StatusRejection: "Order rejected",
}

// StatusUsecase manages the fixed status vocabulary.
type StatusUsecase struct {
	statuses orderdom.StatusRepository
}

func NewStatusUsecase(statuses orderdom.StatusRepository) *StatusUsecase {
	return &StatusUsecase{statuses: statuses}
}

// EnsureDefaults seeds one row per enum value, NEW first so it takes the
// lowest identity. Existing rows are left alone.
func (uc *StatusUsecase) EnsureDefaults(ctx context.Context) error {
	for _, title := range orderdom.StatusTitles {
		_, err := uc.statuses.GetByTitle(ctx, title)
		if err == nil {
			continue
		}
		if !errors.Is(err, orderdom.ErrStatusNotFound) {
			return err
		}
		if _, err := uc.statuses.SaveStatus(ctx, orderdom.NewStatus(title, statusDescriptions[title])); err != nil {
			return err
		}
	}
	return nil
}

// GetDefault returns the NEW status.
func (uc *StatusUsecase) GetDefault(ctx context.Context) (orderdom.Status, error) {
	return uc.GetByTitle(ctx, orderdom.StatusNew)
}

// GetByTitle resolves a status row by enum value.
func (uc *StatusUsecase) GetByTitle(ctx context.Context, title orderdom.StatusTitle) (orderdom.Status, error) {
	s, err := uc.statuses.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, orderdom.ErrStatusNotFound) {
			return orderdom.Status{}, ErrStatusNotFound
		}
		return orderdom.Status{}, err
	}
	return s, nil
}

// GetAll lists every status row.
func (uc *StatusUsecase) GetAll(ctx context.Context) ([]orderdom.Status, error) {
	return uc.statuses.GetAllStatuses(ctx)
}

// Delete removes a status row; it fails with order.ErrStatusInUse while
// orders still reference it.
func (uc *StatusUsecase) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrStatusInvalidArgument
	}
	return uc.statuses.DeleteStatus(ctx, id)
}

// DeleteWithOrders is the explicit cascade: removes the status AND every
// order referencing it. Callers opt into this deliberately.
func (uc *StatusUsecase) DeleteWithOrders(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrStatusInvalidArgument
	}
	return uc.statuses.DeleteStatusWithOrders(ctx, id)
}
