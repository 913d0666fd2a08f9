// internal/adapters/out/db/order_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"storefront/internal/domain/catalog"
	orderdom "storefront/internal/domain/order"
	"storefront/internal/domain/sale"
	userdom "storefront/internal/domain/user"
)

// OrderRepositoryPG implements order.Repository on PostgreSQL.
//
// The line-item snapshot is stored denormalized in an items JSONB column:
// the order owns its copies, so there is nothing to share with the catalog
// rows and no join to keep consistent.
type OrderRepositoryPG struct {
	DB *sql.DB
}

func NewOrderRepositoryPG(db *sql.DB) *OrderRepositoryPG {
	return &OrderRepositoryPG{DB: db}
}

const orderColumns = `
o.id, o.number, o.date, o.shipping_address, o.shipping_details, o.description, o.items,
s.id, s.title, s.description,
c.id, c.name, c.username, c.password, c.email, c.phone, c.description,
cr.id, cr.title, cr.description,
m.id, m.name, m.username, m.password, m.email, m.phone, m.description,
mr.id, mr.title, mr.description`

const orderFrom = `
FROM orders o
JOIN statuses s ON s.id = o.status_id
JOIN users c    ON c.id = o.client_id
JOIN roles cr   ON cr.id = c.role_id
LEFT JOIN users m  ON m.id = o.manager_id
LEFT JOIN roles mr ON mr.id = m.role_id`

func (r *OrderRepositoryPG) GetByID(ctx context.Context, id int64) (*orderdom.Order, error) {
	q := `SELECT ` + orderColumns + orderFrom + ` WHERE o.id = $1`
	o, err := scanOrder(r.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orderdom.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OrderRepositoryPG) GetByNumber(ctx context.Context, number string) (*orderdom.Order, error) {
	q := `SELECT ` + orderColumns + orderFrom + ` WHERE o.number = $1`
	o, err := scanOrder(r.DB.QueryRowContext(ctx, q, strings.TrimSpace(number)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orderdom.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OrderRepositoryPG) GetAll(ctx context.Context) ([]*orderdom.Order, error) {
	q := `SELECT ` + orderColumns + orderFrom + ` ORDER BY o.id`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*orderdom.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Save persists the order and, in the same transaction, the client contact
// row — the update workflow edits both as one logical mutation. Inserts when
// o.ID == 0, updates otherwise (last write wins).
func (r *OrderRepositoryPG) Save(ctx context.Context, o *orderdom.Order) (*orderdom.Order, error) {
	if o == nil || o.Client == nil {
		return nil, errors.New("order_repository_pg: order and client are required")
	}

	itemsJSON, err := json.Marshal(itemRowsFromDomain(o.Items()))
	if err != nil {
		return nil, err
	}

	var managerID sql.NullInt64
	if o.Manager != nil {
		managerID = sql.NullInt64{Int64: o.Manager.ID, Valid: true}
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if o.ID == 0 {
		const q = `
INSERT INTO orders (number, date, shipping_address, shipping_details, description,
  status_id, client_id, manager_id, items)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb)
RETURNING id`
		if err := tx.QueryRowContext(ctx, q,
			strings.TrimSpace(o.Number), o.Date, o.ShippingAddress, o.ShippingDetails,
			o.Description, o.Status.ID, o.Client.ID, managerID, string(itemsJSON),
		).Scan(&o.ID); err != nil {
			return nil, err
		}
	} else {
		const q = `
UPDATE orders SET number = $2, date = $3, shipping_address = $4, shipping_details = $5,
  description = $6, status_id = $7, client_id = $8, manager_id = $9, items = $10::jsonb
WHERE id = $1`
		res, err := tx.ExecContext(ctx, q,
			o.ID, strings.TrimSpace(o.Number), o.Date, o.ShippingAddress, o.ShippingDetails,
			o.Description, o.Status.ID, o.Client.ID, managerID, string(itemsJSON))
		if err != nil {
			return nil, err
		}
		aff, _ := res.RowsAffected()
		if aff == 0 {
			return nil, orderdom.ErrNotFound
		}
	}

	if o.Client.ID != 0 {
		const q = `UPDATE users SET name = $2, email = $3, phone = $4 WHERE id = $1`
		if _, err := tx.ExecContext(ctx, q,
			o.Client.ID, o.Client.Name, o.Client.Email, o.Client.Phone); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepositoryPG) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return orderdom.ErrNotFound
	}
	return nil
}

func (r *OrderRepositoryPG) DeleteByNumber(ctx context.Context, number string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE number = $1`, strings.TrimSpace(number))
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return orderdom.ErrNotFound
	}
	return nil
}

func (r *OrderRepositoryPG) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM orders`)
	return err
}

// ========================
// Helpers
// ========================

type itemRow struct {
	ProductID   int64   `json:"productId"`
	Article     int     `json:"article"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
}

func itemRowsFromDomain(items []*sale.LineItem) []itemRow {
	out := make([]itemRow, 0, len(items))
	for _, li := range items {
		if li == nil || li.Product == nil {
			continue
		}
		out = append(out, itemRow{
			ProductID:   li.Product.ID,
			Article:     li.Product.Article,
			Title:       li.Product.Title,
			URL:         li.Product.URL,
			Description: li.Product.Description,
			Price:       li.Product.Price,
			Qty:         li.Quantity,
		})
	}
	return out
}

func itemRowsToDomain(rows []itemRow) []*sale.LineItem {
	out := make([]*sale.LineItem, 0, len(rows))
	for _, it := range rows {
		p := &catalog.Product{
			ID:          it.ProductID,
			Article:     it.Article,
			Title:       it.Title,
			URL:         it.URL,
			Description: it.Description,
			Price:       it.Price,
		}
		out = append(out, sale.NewLineItem(p, it.Qty))
	}
	return out
}

func scanOrder(s rowScanner) (*orderdom.Order, error) {
	var (
		id                                            int64
		number, date, shipAddr, shipDetails, desc     string
		itemsRaw                                      []byte
		st                                            orderdom.Status
		client                                        userdom.User
		mID, mRoleID                                  sql.NullInt64
		mName, mUsername, mPassword                   sql.NullString
		mEmail, mPhone, mDesc, mRoleTitle, mRoleDescr sql.NullString
	)
	if err := s.Scan(
		&id, &number, &date, &shipAddr, &shipDetails, &desc, &itemsRaw,
		&st.ID, &st.Title, &st.Description,
		&client.ID, &client.Name, &client.Username, &client.Password,
		&client.Email, &client.Phone, &client.Description,
		&client.Role.ID, &client.Role.Title, &client.Role.Description,
		&mID, &mName, &mUsername, &mPassword, &mEmail, &mPhone, &mDesc,
		&mRoleID, &mRoleTitle, &mRoleDescr,
	); err != nil {
		return nil, err
	}

	var rows []itemRow
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &rows); err != nil {
			return nil, err
		}
	}

	var manager *userdom.User
	if mID.Valid {
		manager = &userdom.User{
			ID:          mID.Int64,
			Name:        mName.String,
			Username:    mUsername.String,
			Password:    mPassword.String,
			Email:       mEmail.String,
			Phone:       mPhone.String,
			Description: mDesc.String,
			Role: userdom.Role{
				ID:          mRoleID.Int64,
				Title:       userdom.RoleTitle(mRoleTitle.String),
				Description: mRoleDescr.String,
			},
		}
	}

	return orderdom.Restore(id, number, date, shipAddr, shipDetails, desc,
		st, &client, manager, itemRowsToDomain(rows)), nil
}
