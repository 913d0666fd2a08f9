// internal/adapters/in/http/console/handler/order_handler.go
package consoleHandler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"storefront/internal/adapters/in/http/middleware"
	usecase "storefront/internal/application/usecase"
	userdom "storefront/internal/domain/user"
)

// OrderHandler serves the console order workflow for staff:
//
//	GET    /console/orders          list
//	GET    /console/orders/{id}     one
//	PUT    /console/orders/{id}     role-gated field replace
//	DELETE /console/orders/{id}     delete one
//	DELETE /console/orders          delete all (administration)
//
// Role gating inside PUT is the policy's job; a manager editing another
// manager's order gets 200 with the unchanged order back.
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) http.Handler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "order handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	id, hasID := pathID(path, "/console/orders")

	switch {
	case r.Method == http.MethodGet && !hasID:
		h.handleList(w, r)
	case r.Method == http.MethodGet && hasID:
		h.handleGet(w, r, id)
	case r.Method == http.MethodPut && hasID:
		h.handleUpdate(w, r, id)
	case r.Method == http.MethodDelete && hasID:
		h.handleDelete(w, r, id)
	case r.Method == http.MethodDelete && !hasID:
		h.handleDeleteAll(w, r)
	default:
		writeErr(w, http.StatusNotFound, "not found")
	}
}

func (h *OrderHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if number := strings.TrimSpace(r.URL.Query().Get("number")); number != "" {
		o, err := h.uc.GetByNumber(r.Context(), number)
		if err != nil {
			h.writeUCErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orderToDTO(o))
		return
	}

	orders, err := h.uc.GetAll(r.Context())
	if err != nil {
		h.writeUCErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ordersToDTO(orders))
}

func (h *OrderHandler) handleGet(w http.ResponseWriter, r *http.Request, id int64) {
	o, err := h.uc.Get(r.Context(), id)
	if err != nil {
		h.writeUCErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderToDTO(o))
}

type orderUpdateReq struct {
	Number          string `json:"number"`
	StatusID        int64  `json:"statusId"`
	ClientName      string `json:"clientName"`
	ClientEmail     string `json:"clientEmail"`
	ClientPhone     string `json:"clientPhone"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingDetails string `json:"shippingDetails"`
	Description     string `json:"description"`
}

func (h *OrderHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id int64) {
	actor, ok := middleware.CurrentActor(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req orderUpdateReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.StatusID == 0 {
		writeErr(w, http.StatusBadRequest, "statusId is required")
		return
	}

	o, err := h.uc.Update(r.Context(), actor, id, usecase.OrderUpdateInput{
		Number:          req.Number,
		StatusID:        req.StatusID,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingDetails: req.ShippingDetails,
		Description:     req.Description,
	})
	if err != nil {
		h.writeUCErr(w, err)
		return
	}

	log.Printf("[console_order_handler] update order=%d actor=%d role=%s", id, actor.ID, actor.Role)
	writeJSON(w, http.StatusOK, orderToDTO(o))
}

func (h *OrderHandler) handleDelete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.uc.Delete(r.Context(), id); err != nil {
		h.writeUCErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func (h *OrderHandler) handleDeleteAll(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.CurrentActor(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	// wiping every order is admin-only
	if u, _ := middleware.CurrentUser(r); u == nil || u.Role.Title != userdom.RoleAdministrator {
		writeErr(w, http.StatusForbidden, "forbidden")
		return
	}

	if err := h.uc.DeleteAll(r.Context()); err != nil {
		h.writeUCErr(w, err)
		return
	}
	log.Printf("[console_order_handler] delete-all actor=%d", actor.ID)
	writeJSON(w, http.StatusOK, map[string]any{"deleted": "all"})
}

func (h *OrderHandler) writeUCErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrOrderInvalidArgument):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrOrderNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrOrderForbidden):
		writeErr(w, http.StatusForbidden, err.Error())
	default:
		writeErr(w, http.StatusInternalServerError, err.Error())
	}
}
