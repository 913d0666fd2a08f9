// internal/adapters/in/http/console/handler/status_handler.go
package consoleHandler

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/adapters/in/http/middleware"
	usecase "storefront/internal/application/usecase"
	orderdom "storefront/internal/domain/order"
	userdom "storefront/internal/domain/user"
)

// StatusHandler serves the status vocabulary:
//
//	GET    /console/statuses                 list
//	DELETE /console/statuses/{id}            delete (refused while in use)
//	DELETE /console/statuses/{id}?cascade=1  delete with referencing orders
type StatusHandler struct {
	uc *usecase.StatusUsecase
}

func NewStatusHandler(uc *usecase.StatusUsecase) http.Handler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "status handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	id, hasID := pathID(path, "/console/statuses")

	switch {
	case r.Method == http.MethodGet && !hasID:
		h.handleList(w, r)
	case r.Method == http.MethodDelete && hasID:
		h.handleDelete(w, r, id)
	default:
		writeErr(w, http.StatusNotFound, "not found")
	}
}

func (h *StatusHandler) handleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.uc.GetAll(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (h *StatusHandler) handleDelete(w http.ResponseWriter, r *http.Request, id int64) {
	// status administration is admin-only
	if u, _ := middleware.CurrentUser(r); u == nil || u.Role.Title != userdom.RoleAdministrator {
		writeErr(w, http.StatusForbidden, "forbidden")
		return
	}

	cascade := r.URL.Query().Get("cascade") == "1"

	var err error
	if cascade {
		err = h.uc.DeleteWithOrders(r.Context(), id)
	} else {
		err = h.uc.Delete(r.Context(), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStatusInvalidArgument):
			writeErr(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderdom.ErrStatusInUse):
			writeErr(w, http.StatusConflict, "status still referenced by orders; pass cascade=1 to delete them too")
		case errors.Is(err, orderdom.ErrStatusNotFound), errors.Is(err, usecase.ErrStatusNotFound):
			writeErr(w, http.StatusNotFound, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": id, "cascade": cascade})
}
