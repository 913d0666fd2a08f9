// internal/adapters/out/db/product_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"storefront/internal/domain/catalog"
)

// ProductRepositoryPG implements catalog.Repository on PostgreSQL.
type ProductRepositoryPG struct {
	DB *sql.DB
}

func NewProductRepositoryPG(db *sql.DB) *ProductRepositoryPG {
	return &ProductRepositoryPG{DB: db}
}

const productColumns = `id, article, title, url, description, price`

func (r *ProductRepositoryPG) GetByID(ctx context.Context, id int64) (catalog.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Product{}, catalog.ErrNotFound
		}
		return catalog.Product{}, err
	}
	return p, nil
}

func (r *ProductRepositoryPG) GetByArticle(ctx context.Context, article int) (catalog.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE article = $1`
	p, err := scanProduct(r.DB.QueryRowContext(ctx, q, article))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Product{}, catalog.ErrNotFound
		}
		return catalog.Product{}, err
	}
	return p, nil
}

func (r *ProductRepositoryPG) GetAll(ctx context.Context) ([]catalog.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []catalog.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepositoryPG) Save(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	if p.ID == 0 {
		const q = `
INSERT INTO products (article, title, url, description, price)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + productColumns
		return scanProduct(r.DB.QueryRowContext(ctx, q,
			p.Article, strings.TrimSpace(p.Title), strings.TrimSpace(p.URL), p.Description, p.Price))
	}

	const q = `
UPDATE products SET article = $2, title = $3, url = $4, description = $5, price = $6
WHERE id = $1
RETURNING ` + productColumns
	out, err := scanProduct(r.DB.QueryRowContext(ctx, q,
		p.ID, p.Article, strings.TrimSpace(p.Title), strings.TrimSpace(p.URL), p.Description, p.Price))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Product{}, catalog.ErrNotFound
		}
		return catalog.Product{}, err
	}
	return out, nil
}

func (r *ProductRepositoryPG) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner) (catalog.Product, error) {
	var p catalog.Product
	if err := s.Scan(&p.ID, &p.Article, &p.Title, &p.URL, &p.Description, &p.Price); err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}
