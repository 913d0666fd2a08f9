// internal/adapters/out/db/user_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	userdom "storefront/internal/domain/user"
)

// UserRepositoryPG implements user.Repository on PostgreSQL.
//
// Tables:
// - roles(id, title UNIQUE, description)
// - users(id, name, username UNIQUE, password, email, phone, description, role_id)
type UserRepositoryPG struct {
	DB *sql.DB
}

func NewUserRepositoryPG(db *sql.DB) *UserRepositoryPG {
	return &UserRepositoryPG{DB: db}
}

const userColumns = `
u.id, u.name, u.username, u.password, u.email, u.phone, u.description,
r.id, r.title, r.description`

const userFrom = `FROM users u JOIN roles r ON r.id = u.role_id`

func (r *UserRepositoryPG) GetByID(ctx context.Context, id int64) (userdom.User, error) {
	q := `SELECT ` + userColumns + ` ` + userFrom + ` WHERE u.id = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return userdom.User{}, userdom.ErrNotFound
		}
		return userdom.User{}, err
	}
	return u, nil
}

func (r *UserRepositoryPG) GetByUsername(ctx context.Context, username string) (userdom.User, error) {
	q := `SELECT ` + userColumns + ` ` + userFrom + ` WHERE u.username = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, q, strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return userdom.User{}, userdom.ErrNotFound
		}
		return userdom.User{}, err
	}
	return u, nil
}

func (r *UserRepositoryPG) GetByRole(ctx context.Context, title userdom.RoleTitle) ([]userdom.User, error) {
	q := `SELECT ` + userColumns + ` ` + userFrom + ` WHERE r.title = $1 ORDER BY u.id`
	return r.queryUsers(ctx, q, string(title))
}

func (r *UserRepositoryPG) GetAll(ctx context.Context) ([]userdom.User, error) {
	q := `SELECT ` + userColumns + ` ` + userFrom + ` ORDER BY u.id`
	return r.queryUsers(ctx, q)
}

func (r *UserRepositoryPG) Save(ctx context.Context, u userdom.User) (userdom.User, error) {
	role, err := r.GetRole(ctx, u.Role.Title)
	if err != nil {
		return userdom.User{}, err
	}

	if u.ID == 0 {
		const q = `
INSERT INTO users (name, username, password, email, phone, description, role_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
		if err := r.DB.QueryRowContext(ctx, q,
			strings.TrimSpace(u.Name), strings.TrimSpace(u.Username), u.Password,
			strings.TrimSpace(u.Email), strings.TrimSpace(u.Phone), u.Description, role.ID,
		).Scan(&u.ID); err != nil {
			return userdom.User{}, err
		}
		u.Role = role
		return u, nil
	}

	const q = `
UPDATE users SET name = $2, username = $3, password = $4, email = $5, phone = $6,
  description = $7, role_id = $8
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, q,
		u.ID, strings.TrimSpace(u.Name), strings.TrimSpace(u.Username), u.Password,
		strings.TrimSpace(u.Email), strings.TrimSpace(u.Phone), u.Description, role.ID)
	if err != nil {
		return userdom.User{}, err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return userdom.User{}, userdom.ErrNotFound
	}
	u.Role = role
	return u, nil
}

func (r *UserRepositoryPG) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return userdom.ErrNotFound
	}
	return nil
}

func (r *UserRepositoryPG) GetRole(ctx context.Context, title userdom.RoleTitle) (userdom.Role, error) {
	const q = `SELECT id, title, description FROM roles WHERE title = $1`
	var role userdom.Role
	if err := r.DB.QueryRowContext(ctx, q, string(title)).Scan(&role.ID, &role.Title, &role.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return userdom.Role{}, userdom.ErrNotFound
		}
		return userdom.Role{}, err
	}
	return role, nil
}

// EnsureRoles seeds one row per role title; existing rows are left alone.
func (r *UserRepositoryPG) EnsureRoles(ctx context.Context) error {
	seeds := []struct {
		title       userdom.RoleTitle
		description string
	}{
		{userdom.RoleClient, "Client"},
		{userdom.RoleAdministrator, "Administrator"},
		{userdom.RoleManager, "Manager"},
	}
	const q = `
INSERT INTO roles (title, description)
VALUES ($1, $2)
ON CONFLICT (title) DO NOTHING`
	for _, s := range seeds {
		if _, err := r.DB.ExecContext(ctx, q, string(s.title), s.description); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepositoryPG) queryUsers(ctx context.Context, q string, args ...any) ([]userdom.User, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []userdom.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(s rowScanner) (userdom.User, error) {
	var u userdom.User
	if err := s.Scan(
		&u.ID, &u.Name, &u.Username, &u.Password, &u.Email, &u.Phone, &u.Description,
		&u.Role.ID, &u.Role.Title, &u.Role.Description,
	); err != nil {
		return userdom.User{}, err
	}
	return u, nil
}
