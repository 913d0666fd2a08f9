// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/sale"
)

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
// - collection: carts
// - docId: sessionId (docId is the source of truth)
// - fields: items(array), createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on "expiresAt".
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("carts")
}

// GetBySessionID returns (nil, nil) if not found (nil policy).
func (r *CartRepositoryFS) GetBySessionID(ctx context.Context, sessionID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, errors.New("cart_repository_fs: sessionID is empty")
	}

	snap, err := r.col().Doc(sid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var doc cartDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	// docId is source of truth even when the doc carries no id field.
	return doc.toDomain(sid), nil
}

// Upsert saves the cart by docId=cart.ID (= sessionId). Full overwrite,
// simple and predictable.
func (r *CartRepositoryFS) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("cart_repository_fs: cart is nil")
	}

	sid := strings.TrimSpace(c.ID)
	if sid == "" {
		return errors.New("cart_repository_fs: Upsert requires cart.ID (= sessionId) as docId")
	}

	_, err := r.col().Doc(sid).Set(ctx, cartDocFromDomain(c))
	return err
}

func (r *CartRepositoryFS) DeleteBySessionID(ctx context.Context, sessionID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return errors.New("cart_repository_fs: sessionID is empty")
	}

	_, err := r.col().Doc(sid).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartDoc struct {
	// Items is stored as an ordered array so the merge-or-append invariant
	// survives a round trip.
	Items []lineItemDoc `firestore:"items"`

	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
	ExpiresAt time.Time `firestore:"expiresAt"`
}

type lineItemDoc struct {
	ProductID   int64   `firestore:"productId"`
	Article     int     `firestore:"article"`
	Title       string  `firestore:"title"`
	URL         string  `firestore:"url"`
	Description string  `firestore:"description,omitempty"`
	Price       float64 `firestore:"price"`
	Qty         int     `firestore:"qty"`
}

func cartDocFromDomain(c *cartdom.Cart) cartDoc {
	items := make([]lineItemDoc, 0, len(c.Items()))
	for _, li := range c.Items() {
		if li == nil || li.Product == nil || li.Quantity <= 0 {
			continue
		}
		items = append(items, lineItemDoc{
			ProductID:   li.Product.ID,
			Article:     li.Product.Article,
			Title:       li.Product.Title,
			URL:         li.Product.URL,
			Description: li.Product.Description,
			Price:       li.Product.Price,
			Qty:         li.Quantity,
		})
	}
	return cartDoc{
		Items:     items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		ExpiresAt: c.ExpiresAt,
	}
}

func (d cartDoc) toDomain(sessionID string) *cartdom.Cart {
	items := make([]*sale.LineItem, 0, len(d.Items))
	for _, it := range d.Items {
		if it.Qty <= 0 {
			continue
		}
		p := &catalog.Product{
			ID:          it.ProductID,
			Article:     it.Article,
			Title:       strings.TrimSpace(it.Title),
			URL:         strings.TrimSpace(it.URL),
			Description: it.Description,
			Price:       it.Price,
		}
		items = append(items, sale.NewLineItem(p, it.Qty))
	}
	return cartdom.Restore(sessionID, items, d.CreatedAt, d.UpdatedAt, d.ExpiresAt)
}
