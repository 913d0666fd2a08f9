// internal/adapters/in/http/store/handler/product_handler.go
package storeHandler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/domain/catalog"
)

// ProductHandler serves the public catalog:
//
//	GET /store/products              list
//	GET /store/products?id=N         one by id
//	GET /store/products?article=N    one by article
type ProductHandler struct {
	products catalog.Repository
}

func NewProductHandler(products catalog.Repository) http.Handler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.products == nil {
		writeErr(w, http.StatusInternalServerError, "product handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if idStr := strings.TrimSpace(r.URL.Query().Get("id")); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid id")
			return
		}
		p, err := h.products.GetByID(r.Context(), id)
		if err != nil {
			h.writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
		return
	}

	if artStr := strings.TrimSpace(r.URL.Query().Get("article")); artStr != "" {
		article, err := strconv.Atoi(artStr)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid article")
			return
		}
		p, err := h.products.GetByArticle(r.Context(), article)
		if err != nil {
			h.writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
		return
	}

	all, err := h.products.GetAll(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (h *ProductHandler) writeErr(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		writeErr(w, http.StatusNotFound, "product not found")
		return
	}
	writeErr(w, http.StatusInternalServerError, err.Error())
}
