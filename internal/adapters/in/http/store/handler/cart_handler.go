// internal/adapters/in/http/store/handler/cart_handler.go
package storeHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	usecase "storefront/internal/application/usecase"
	cartdom "storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
)

// CartHandler serves the store cart endpoints:
//
//	GET    /store/cart            current cart (creates one when absent)
//	DELETE /store/cart            clear the cart
//	POST   /store/cart/items      add one unit of a product
//	DELETE /store/cart/items      remove a product's line
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	isItems := strings.HasSuffix(path, "/cart/items")
	isCart := !isItems && (strings.HasSuffix(path, "/cart") || path == "")

	switch {
	case r.Method == http.MethodGet && isCart:
		h.handleGet(w, r)
	case r.Method == http.MethodDelete && isCart:
		h.handleClear(w, r)
	case r.Method == http.MethodPost && isItems:
		h.handleAddItem(w, r)
	case r.Method == http.MethodDelete && isItems:
		h.handleRemoveItem(w, r)
	default:
		writeErr(w, http.StatusNotFound, "not found")
	}
}

func (h *CartHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	sid := ensureSessionID(w, r)

	c, err := h.uc.GetOrCreate(r.Context(), sid)
	if err != nil {
		h.writeUCErr(w, sid, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, cartToDTO(c))
}

type cartItemReq struct {
	ProductID int64 `json:"productId"`
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ProductID == 0 {
		writeErr(w, http.StatusBadRequest, "productId is required")
		return
	}

	sid := ensureSessionID(w, r)

	c, err := h.uc.AddProduct(r.Context(), sid, req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "product not found")
			return
		}
		h.writeUCErr(w, sid, "add-item", err)
		return
	}
	writeJSON(w, http.StatusOK, cartToDTO(c))
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ProductID == 0 {
		writeErr(w, http.StatusBadRequest, "productId is required")
		return
	}

	sid := readSessionID(r)
	if sid == "" {
		writeErr(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	c, err := h.uc.RemoveProduct(r.Context(), sid, req.ProductID)
	if err != nil {
		if errors.Is(err, usecase.ErrCartNotFound) {
			writeJSON(w, http.StatusOK, emptyCartDTO(sid))
			return
		}
		h.writeUCErr(w, sid, "remove-item", err)
		return
	}
	writeJSON(w, http.StatusOK, cartToDTO(c))
}

func (h *CartHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	sid := readSessionID(r)
	if sid == "" {
		writeErr(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	if err := h.uc.Clear(r.Context(), sid); err != nil {
		h.writeUCErr(w, sid, "clear", err)
		return
	}
	writeJSON(w, http.StatusOK, emptyCartDTO(sid))
}

func (h *CartHandler) writeUCErr(w http.ResponseWriter, sid, op string, err error) {
	log.Printf("[store_cart_handler] %s failed session=%s err=%v", op, sid, err)
	if errors.Is(err, usecase.ErrCartInvalidArgument) || errors.Is(err, cartdom.ErrInvalidCart) {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeErr(w, http.StatusInternalServerError, err.Error())
}
