// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	cartdom "storefront/internal/domain/cart"
	orderdom "storefront/internal/domain/order"
	"storefront/internal/domain/sale"
	userdom "storefront/internal/domain/user"
)

var (
	ErrCheckoutInvalidArgument = errors.New("checkout_usecase: invalid argument")
	ErrCheckoutEmptyCart       = errors.New("checkout_usecase: cart is empty")
)

// Notifier delivers the finalized order summary over a side channel
// (email). Best effort: failures are logged, never rolled back into the
// checkout.
type Notifier interface {
	NotifyOrderPlaced(ctx context.Context, o *orderdom.Order) error
}

// EventPublisher emits an order-placed event to the message bus. Best
// effort, like Notifier.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, o *orderdom.Order) error
}

const sideEffectTimeout = 10 * time.Second

// CheckoutUsecase promotes a session cart into a persisted order.
type CheckoutUsecase struct {
	carts    cartdom.Repository
	orders   orderdom.Repository
	statuses orderdom.StatusRepository
	notifier Notifier
	events   EventPublisher
	clock    Clock
}

func NewCheckoutUsecase(carts cartdom.Repository, orders orderdom.Repository,
	statuses orderdom.StatusRepository, notifier Notifier, events EventPublisher) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts:    carts,
		orders:   orders,
		statuses: statuses,
		notifier: notifier,
		events:   events,
		clock:    systemClock{},
	}
}

// NewCheckoutUsecaseWithClock is useful for tests.
func NewCheckoutUsecaseWithClock(carts cartdom.Repository, orders orderdom.Repository,
	statuses orderdom.StatusRepository, notifier Notifier, events EventPublisher, clock Clock) *CheckoutUsecase {
	uc := NewCheckoutUsecase(carts, orders, statuses, notifier, events)
	if clock != nil {
		uc.clock = clock
	}
	return uc
}

// Checkout snapshots the session cart's line items into a new order with
// the default status and the acting client, persists the order, clears the
// cart, then notifies and publishes fire-and-forget.
func (uc *CheckoutUsecase) Checkout(ctx context.Context, sessionID string, client *userdom.User) (*orderdom.Order, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" || client == nil {
		return nil, ErrCheckoutInvalidArgument
	}

	c, err := uc.carts.GetBySessionID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if c == nil || len(c.Items()) == 0 {
		return nil, ErrCheckoutEmptyCart
	}

	defaultStatus, err := uc.statuses.GetByTitle(ctx, orderdom.StatusNew)
	if err != nil {
		return nil, err
	}

	// Own copies: the order must be unaffected by later cart mutations.
	snapshot := make([]*sale.LineItem, 0, len(c.Items()))
	for _, li := range c.Items() {
		snapshot = append(snapshot, li.Clone())
	}

	now := uc.clock.Now()
	o := orderdom.New(defaultStatus, client, snapshot, now)

	saved, err := uc.orders.Save(ctx, o)
	if err != nil {
		return nil, err
	}

	c.Clear()
	c.Touch(now)
	if err := uc.carts.Upsert(ctx, c); err != nil {
		// The order exists; an unclean cart only risks a duplicate checkout
		// attempt, which the client can resolve. Log and return the order.
		log.Printf("[checkout_usecase] cart clear failed session=%s order=%s err=%v", sid, saved.Number, err)
	}

	uc.fanOut(saved)
	return saved, nil
}

// fanOut runs the best-effort side effects detached from the request.
func (uc *CheckoutUsecase) fanOut(o *orderdom.Order) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		if uc.notifier != nil {
			if err := uc.notifier.NotifyOrderPlaced(ctx, o); err != nil {
				log.Printf("[checkout_usecase] notify failed order=%s err=%v", o.Number, err)
			}
		}
		if uc.events != nil {
			if err := uc.events.PublishOrderPlaced(ctx, o); err != nil {
				log.Printf("[checkout_usecase] publish failed order=%s err=%v", o.Number, err)
			}
		}
	}()
}
