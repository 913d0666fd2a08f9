package usecase

import (
	"context"
	"sync"
	"time"

	cartdom "storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	orderdom "storefront/internal/domain/order"
	userdom "storefront/internal/domain/user"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)

// ---- cart repo ----

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]*cartdom.Cart
	err   error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*cartdom.Cart{}}
}

func (r *fakeCartRepo) GetBySessionID(_ context.Context, sessionID string) (*cartdom.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.carts[sessionID], nil
}

func (r *fakeCartRepo) Upsert(_ context.Context, c *cartdom.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.carts[c.ID] = c
	return nil
}

func (r *fakeCartRepo) DeleteBySessionID(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

// ---- product repo ----

type fakeProductRepo struct {
	products map[int64]catalog.Product
}

func newFakeProductRepo(products ...catalog.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[int64]catalog.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) GetByArticle(_ context.Context, article int) (catalog.Product, error) {
	for _, p := range r.products {
		if p.Article == article {
			return p, nil
		}
	}
	return catalog.Product{}, catalog.ErrNotFound
}

func (r *fakeProductRepo) GetAll(_ context.Context) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Save(_ context.Context, p catalog.Product) (catalog.Product, error) {
	if p.ID == 0 {
		p.ID = int64(len(r.products) + 1)
	}
	r.products[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

// ---- order repo ----

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[int64]*orderdom.Order
	nextID int64
	err    error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*orderdom.Order{}, nextID: 1}
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, orderdom.ErrNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) GetByNumber(_ context.Context, number string) (*orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.Number == number {
			return o, nil
		}
	}
	return nil, orderdom.ErrNotFound
}

func (r *fakeOrderRepo) GetAll(_ context.Context) ([]*orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*orderdom.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, o *orderdom.Order) (*orderdom.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if o.ID == 0 {
		o.ID = r.nextID
		r.nextID++
	}
	r.orders[o.ID] = o
	return o, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return orderdom.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) DeleteByNumber(_ context.Context, number string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, o := range r.orders {
		if o.Number == number {
			delete(r.orders, id)
			return nil
		}
	}
	return orderdom.ErrNotFound
}

func (r *fakeOrderRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = map[int64]*orderdom.Order{}
	return nil
}

// ---- status repo ----

type fakeStatusRepo struct {
	statuses map[int64]orderdom.Status
	nextID   int64
}

func newFakeStatusRepo() *fakeStatusRepo {
	r := &fakeStatusRepo{statuses: map[int64]orderdom.Status{}, nextID: 1}
	for _, title := range orderdom.StatusTitles {
		s := orderdom.NewStatus(title, string(title))
		s.ID = r.nextID
		r.statuses[s.ID] = s
		r.nextID++
	}
	return r
}

func (r *fakeStatusRepo) GetStatusByID(_ context.Context, id int64) (orderdom.Status, error) {
	s, ok := r.statuses[id]
	if !ok {
		return orderdom.Status{}, orderdom.ErrStatusNotFound
	}
	return s, nil
}

func (r *fakeStatusRepo) GetByTitle(_ context.Context, title orderdom.StatusTitle) (orderdom.Status, error) {
	for _, s := range r.statuses {
		if s.Title == title {
			return s, nil
		}
	}
	return orderdom.Status{}, orderdom.ErrStatusNotFound
}

func (r *fakeStatusRepo) GetAllStatuses(_ context.Context) ([]orderdom.Status, error) {
	out := make([]orderdom.Status, 0, len(r.statuses))
	for _, s := range r.statuses {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStatusRepo) SaveStatus(_ context.Context, s orderdom.Status) (orderdom.Status, error) {
	if s.ID == 0 {
		s.ID = r.nextID
		r.nextID++
	}
	r.statuses[s.ID] = s
	return s, nil
}

func (r *fakeStatusRepo) DeleteStatus(_ context.Context, id int64) error {
	delete(r.statuses, id)
	return nil
}

func (r *fakeStatusRepo) DeleteStatusWithOrders(_ context.Context, id int64) error {
	delete(r.statuses, id)
	return nil
}

func (r *fakeStatusRepo) byTitle(title orderdom.StatusTitle) orderdom.Status {
	for _, s := range r.statuses {
		if s.Title == title {
			return s
		}
	}
	return orderdom.Status{}
}

// ---- user repo ----

type fakeUserRepo struct {
	users map[int64]userdom.User
}

func newFakeUserRepo(users ...userdom.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int64]userdom.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (userdom.User, error) {
	u, ok := r.users[id]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (userdom.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return userdom.User{}, userdom.ErrNotFound
}

func (r *fakeUserRepo) GetByRole(_ context.Context, title userdom.RoleTitle) ([]userdom.User, error) {
	var out []userdom.User
	for _, u := range r.users {
		if u.Role.Title == title {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]userdom.User, error) {
	out := make([]userdom.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Save(_ context.Context, u userdom.User) (userdom.User, error) {
	if u.ID == 0 {
		u.ID = int64(len(r.users) + 1)
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetRole(_ context.Context, title userdom.RoleTitle) (userdom.Role, error) {
	return userdom.Role{ID: 1, Title: title}, nil
}

func (r *fakeUserRepo) EnsureRoles(_ context.Context) error { return nil }

// ---- side channels ----

type fakeNotifier struct {
	mu     sync.Mutex
	orders []*orderdom.Order
	err    error
	done   chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{done: make(chan struct{}, 8)}
}

func (n *fakeNotifier) NotifyOrderPlaced(_ context.Context, o *orderdom.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, o)
	n.done <- struct{}{}
	return n.err
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.orders)
}

type fakePublisher struct {
	mu     sync.Mutex
	orders []*orderdom.Order
	err    error
	done   chan struct{}
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{done: make(chan struct{}, 8)}
}

func (p *fakePublisher) PublishOrderPlaced(_ context.Context, o *orderdom.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = append(p.orders, o)
	p.done <- struct{}{}
	return p.err
}
