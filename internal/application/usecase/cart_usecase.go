// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/sale"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartNotFound        = errors.New("cart_usecase: not found")
)

// CartUsecase coordinates session cart operations.
type CartUsecase struct {
	carts    cartdom.Repository
	products catalog.Repository
	clock    Clock
}

func NewCartUsecase(carts cartdom.Repository, products catalog.Repository) *CartUsecase {
	return &CartUsecase{carts: carts, products: products, clock: systemClock{}}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(carts cartdom.Repository, products catalog.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{carts: carts, products: products, clock: clock}
}

// Get returns the cart for the session, or ErrCartNotFound.
func (uc *CartUsecase) Get(ctx context.Context, sessionID string) (*cartdom.Cart, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.carts.GetBySessionID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

// GetOrCreate returns an existing cart; if absent, creates an empty one and
// persists it.
func (uc *CartUsecase) GetOrCreate(ctx context.Context, sessionID string) (*cartdom.Cart, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.carts.GetBySessionID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	now := uc.clock.Now()
	fresh, err := cartdom.New(sid, now)
	if err != nil {
		return nil, err
	}
	if err := uc.carts.Upsert(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// AddProduct looks the product up and merges a one-unit line item into the
// cart (a second add of the same product increments quantity instead of
// duplicating the line).
func (uc *CartUsecase) AddProduct(ctx context.Context, sessionID string, productID int64) (*cartdom.Cart, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" || productID == 0 {
		return nil, ErrCartInvalidArgument
	}

	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	c, err := uc.carts.GetBySessionID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.New(sid, now)
		if err != nil {
			return nil, err
		}
	}

	c.Add(sale.NewLineItem(&p, 1))
	c.Touch(now)
	if err := uc.carts.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveProduct drops the product's line item from the cart; absent product
// or absent cart is a no-op.
func (uc *CartUsecase) RemoveProduct(ctx context.Context, sessionID string, productID int64) (*cartdom.Cart, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" || productID == 0 {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.carts.GetBySessionID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}

	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c, nil
		}
		return nil, err
	}

	c.Remove(sale.NewLineItem(&p, 1))
	c.Touch(uc.clock.Now())
	if err := uc.carts.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the cart in place (the document survives for the session).
func (uc *CartUsecase) Clear(ctx context.Context, sessionID string) error {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return ErrCartInvalidArgument
	}

	c, err := uc.carts.GetBySessionID(ctx, sid)
	if err != nil {
		return err
	}
	if c == nil {
		return nil
	}

	c.Clear()
	c.Touch(uc.clock.Now())
	return uc.carts.Upsert(ctx, c)
}

// Drop deletes the cart document entirely (session end / logout).
func (uc *CartUsecase) Drop(ctx context.Context, sessionID string) error {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return ErrCartInvalidArgument
	}
	return uc.carts.DeleteBySessionID(ctx, sid)
}
