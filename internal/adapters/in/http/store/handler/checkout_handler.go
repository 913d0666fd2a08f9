// internal/adapters/in/http/store/handler/checkout_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"

	"storefront/internal/adapters/in/http/middleware"
	usecase "storefront/internal/application/usecase"
	"storefront/internal/infra/metrics"
)

// CheckoutHandler serves POST /store/checkout: the authenticated client
// promotes their session cart into an order.
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "checkout handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	client, ok := middleware.CurrentUser(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sid := readSessionID(r)
	if sid == "" {
		writeErr(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	o, err := h.uc.Checkout(r.Context(), sid, client)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCheckoutInvalidArgument):
			writeErr(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrCheckoutEmptyCart):
			writeErr(w, http.StatusConflict, "cart is empty")
		default:
			log.Printf("[store_checkout_handler] checkout failed session=%s err=%v", sid, err)
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	metrics.OrderPlaced()
	log.Printf("[store_checkout_handler] order placed number=%s client=%d price=%v", o.Number, client.ID, o.Price())
	writeJSON(w, http.StatusCreated, orderToDTO(o))
}
