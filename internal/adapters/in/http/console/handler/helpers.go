// internal/adapters/in/http/console/handler/helpers.go
package consoleHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	orderdom "storefront/internal/domain/order"
	"storefront/internal/domain/sale"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": strings.TrimSpace(msg),
	})
}

func readJSON(r *http.Request, dst any) error {
	if dst == nil {
		return errors.New("dst is nil")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)) // 1MB
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID extracts the trailing numeric path segment after the prefix,
// e.g. pathID("/console/orders/42", "/console/orders/") -> 42.
func pathID(path, prefix string) (int64, bool) {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ============================================================
// response DTOs
// ============================================================

type lineItemDTO struct {
	Product  any     `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

func lineItemDTOs(items []*sale.LineItem) []lineItemDTO {
	out := make([]lineItemDTO, 0, len(items))
	for _, li := range items {
		if li == nil {
			continue
		}
		out = append(out, lineItemDTO{
			Product:  li.Product,
			Quantity: li.Quantity,
			Subtotal: li.Subtotal(),
		})
	}
	return out
}

type orderDTO struct {
	ID              int64           `json:"id"`
	Number          string          `json:"number"`
	Date            string          `json:"date"`
	Status          orderdom.Status `json:"status"`
	ShippingAddress string          `json:"shippingAddress,omitempty"`
	ShippingDetails string          `json:"shippingDetails,omitempty"`
	Description     string          `json:"description,omitempty"`
	Client          any             `json:"client,omitempty"`
	Manager         any             `json:"manager,omitempty"`
	Items           []lineItemDTO   `json:"items"`
	Price           float64         `json:"price"`
}

func orderToDTO(o *orderdom.Order) orderDTO {
	dto := orderDTO{
		ID:              o.ID,
		Number:          o.Number,
		Date:            o.Date,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		ShippingDetails: o.ShippingDetails,
		Description:     o.Description,
		Items:           lineItemDTOs(o.Items()),
		Price:           o.Price(),
	}
	if o.Client != nil {
		dto.Client = o.Client
	}
	if o.Manager != nil {
		dto.Manager = o.Manager
	}
	return dto
}

func ordersToDTO(orders []*orderdom.Order) []orderDTO {
	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderToDTO(o))
	}
	return out
}
