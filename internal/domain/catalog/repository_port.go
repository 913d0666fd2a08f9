// internal/domain/catalog/repository_port.go
package catalog

import (
	"context"
	"errors"
)

// Repository is the persistence port for Product.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Product, error)
	GetByArticle(ctx context.Context, article int) (Product, error)
	GetAll(ctx context.Context) ([]Product, error)

	// Save inserts when p.ID == 0, otherwise updates. Returns the stored row.
	Save(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id int64) error
}

var ErrNotFound = errors.New("catalog: product not found")
