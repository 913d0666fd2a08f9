// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	consoleHandler "storefront/internal/adapters/in/http/console/handler"
	"storefront/internal/adapters/in/http/middleware"
	storeHandler "storefront/internal/adapters/in/http/store/handler"
	usecase "storefront/internal/application/usecase"
	"storefront/internal/domain/catalog"
	userdom "storefront/internal/domain/user"
	"storefront/internal/infra/metrics"
)

// RouterDeps collects the usecases and dependencies injected from the
// container.
type RouterDeps struct {
	CartUC     *usecase.CartUsecase
	CheckoutUC *usecase.CheckoutUsecase
	OrderUC    *usecase.OrderUsecase
	StatusUC   *usecase.StatusUsecase

	Products catalog.Repository
	Users    userdom.Repository

	// FirebaseAuth may be nil in local runs; authenticated routes then
	// answer 503 instead of panicking.
	FirebaseAuth *middleware.FirebaseAuthClient

	AllowOrigin string
}

// NewRouter mounts the store and console surfaces plus the operational
// endpoints, wrapped in recover/CORS/metrics.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())

	auth := &middleware.AuthMiddleware{FirebaseAuth: deps.FirebaseAuth, Users: deps.Users}

	// ---- store (client side) ----

	if deps.CartUC != nil {
		cart := metrics.Instrument("/store/cart", storeHandler.NewCartHandler(deps.CartUC))
		mux.Handle("/store/cart", cart)
		mux.Handle("/store/cart/", cart)
	}

	if deps.Products != nil {
		products := metrics.Instrument("/store/products", storeHandler.NewProductHandler(deps.Products))
		mux.Handle("/store/products", products)
	}

	if deps.CheckoutUC != nil {
		checkout := auth.Handler(storeHandler.NewCheckoutHandler(deps.CheckoutUC))
		mux.Handle("/store/checkout", metrics.Instrument("/store/checkout", checkout))
	}

	// ---- console (staff side) ----

	if deps.OrderUC != nil {
		orders := auth.Handler(middleware.RequireStaff(consoleHandler.NewOrderHandler(deps.OrderUC)))
		orders = metrics.Instrument("/console/orders", orders)
		mux.Handle("/console/orders", orders)
		mux.Handle("/console/orders/", orders)
	}

	if deps.StatusUC != nil {
		statuses := auth.Handler(middleware.RequireStaff(consoleHandler.NewStatusHandler(deps.StatusUC)))
		statuses = metrics.Instrument("/console/statuses", statuses)
		mux.Handle("/console/statuses", statuses)
		mux.Handle("/console/statuses/", statuses)
	}

	// chain order matters: recover outermost so CORS headers survive panics
	var h http.Handler = mux
	h = middleware.CORS(deps.AllowOrigin)(h)
	h = middleware.Recover(h)
	return h
}
