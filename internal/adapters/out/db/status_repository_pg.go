// internal/adapters/out/db/status_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"

	orderdom "storefront/internal/domain/order"
)

// StatusRepositoryPG implements order.StatusRepository on PostgreSQL.
type StatusRepositoryPG struct {
	DB *sql.DB
}

func NewStatusRepositoryPG(db *sql.DB) *StatusRepositoryPG {
	return &StatusRepositoryPG{DB: db}
}

func (r *StatusRepositoryPG) GetStatusByID(ctx context.Context, id int64) (orderdom.Status, error) {
	const q = `SELECT id, title, description FROM statuses WHERE id = $1`
	s, err := scanStatus(r.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orderdom.Status{}, orderdom.ErrStatusNotFound
		}
		return orderdom.Status{}, err
	}
	return s, nil
}

func (r *StatusRepositoryPG) GetByTitle(ctx context.Context, title orderdom.StatusTitle) (orderdom.Status, error) {
	const q = `SELECT id, title, description FROM statuses WHERE title = $1`
	s, err := scanStatus(r.DB.QueryRowContext(ctx, q, string(title)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orderdom.Status{}, orderdom.ErrStatusNotFound
		}
		return orderdom.Status{}, err
	}
	return s, nil
}

func (r *StatusRepositoryPG) GetAllStatuses(ctx context.Context) ([]orderdom.Status, error) {
	const q = `SELECT id, title, description FROM statuses ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []orderdom.Status{}
	for rows.Next() {
		s, err := scanStatus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *StatusRepositoryPG) SaveStatus(ctx context.Context, s orderdom.Status) (orderdom.Status, error) {
	if s.ID == 0 {
		const q = `
INSERT INTO statuses (title, description)
VALUES ($1, $2)
ON CONFLICT (title) DO UPDATE SET description = EXCLUDED.description
RETURNING id, title, description`
		return scanStatus(r.DB.QueryRowContext(ctx, q, string(s.Title), s.Description))
	}

	const q = `
UPDATE statuses SET title = $2, description = $3
WHERE id = $1
RETURNING id, title, description`
	out, err := scanStatus(r.DB.QueryRowContext(ctx, q, s.ID, string(s.Title), s.Description))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orderdom.Status{}, orderdom.ErrStatusNotFound
		}
		return orderdom.Status{}, err
	}
	return out, nil
}

// DeleteStatus removes a status row, refusing while orders still reference
// it. The check and the delete share one transaction.
func (r *StatusRepositoryPG) DeleteStatus(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var inUse int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE status_id = $1`, id).Scan(&inUse); err != nil {
		return err
	}
	if inUse > 0 {
		return orderdom.ErrStatusInUse
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM statuses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return orderdom.ErrStatusNotFound
	}
	return tx.Commit()
}

// DeleteStatusWithOrders is the explicit cascade: removes every order
// referencing the status, then the status itself, in one transaction.
func (r *StatusRepositoryPG) DeleteStatusWithOrders(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE status_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM statuses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return orderdom.ErrStatusNotFound
	}
	return tx.Commit()
}

func scanStatus(s rowScanner) (orderdom.Status, error) {
	var out orderdom.Status
	if err := s.Scan(&out.ID, &out.Title, &out.Description); err != nil {
		return orderdom.Status{}, err
	}
	return out, nil
}
