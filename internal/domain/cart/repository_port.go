// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is the session-keyed cart store.
//
// Storage design (Firestore):
// - collection: carts
// - docId: session id
// - fields: items, createdAt, updatedAt, expiresAt
//
// TTL: configure Firestore TTL on "expiresAt"; the domain refreshes it on
// each mutation via Touch, so a cart lives exactly one idle session window.
type Repository interface {
	// GetBySessionID returns (nil, nil) when no cart exists for the session.
	GetBySessionID(ctx context.Context, sessionID string) (*Cart, error)

	// Upsert saves the cart (create or update), full-document overwrite.
	Upsert(ctx context.Context, c *Cart) error

	// DeleteBySessionID removes the cart document (session end / logout).
	DeleteBySessionID(ctx context.Context, sessionID string) error
}
