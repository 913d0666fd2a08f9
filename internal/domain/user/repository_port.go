// internal/domain/user/repository_port.go
package user

import (
	"context"
	"errors"
)

// Repository is the persistence port for User and Role.
type Repository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByRole(ctx context.Context, title RoleTitle) ([]User, error)
	GetAll(ctx context.Context) ([]User, error)

	// Save inserts when u.ID == 0, otherwise updates. Returns the stored row.
	Save(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id int64) error

	// Roles
	GetRole(ctx context.Context, title RoleTitle) (Role, error)
	EnsureRoles(ctx context.Context) error
}

var ErrNotFound = errors.New("user: not found")
