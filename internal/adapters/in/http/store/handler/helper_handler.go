// internal/adapters/in/http/store/handler/helper_handler.go
package storeHandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	cartdom "storefront/internal/domain/cart"
	orderdom "storefront/internal/domain/order"
	"storefront/internal/domain/sale"
)

// ============================================================
// HTTP helpers
// ============================================================

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

// readSessionID resolves the cart session: query param first, then header.
func readSessionID(r *http.Request) string {
	if v := strings.TrimSpace(r.URL.Query().Get("sessionId")); v != "" {
		return v
	}
	return strings.TrimSpace(r.Header.Get("X-Session-Id"))
}

// ensureSessionID returns the request's session id, minting a fresh one
// when the client has none yet. The id is echoed in the response header so
// the front end can persist it.
func ensureSessionID(w http.ResponseWriter, r *http.Request) string {
	sid := readSessionID(r)
	if sid == "" {
		sid = uuid.NewString()
	}
	w.Header().Set("X-Session-Id", sid)
	return sid
}

func toRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ============================================================
// response DTOs
// ============================================================

type lineItemDTO struct {
	Product  any     `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type cartDTO struct {
	SessionID string        `json:"sessionId"`
	Items     []lineItemDTO `json:"items"`
	Price     float64       `json:"price"`
	Size      int           `json:"size"`
	CreatedAt string        `json:"createdAt,omitempty"`
	UpdatedAt string        `json:"updatedAt,omitempty"`
	ExpiresAt string        `json:"expiresAt,omitempty"`
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

func cartToDTO(c *cartdom.Cart) cartDTO {
	return cartDTO{
		SessionID: c.ID,
		Items:     lineItemDTOs(c.Items()),
		Price:     c.Price(),
		Size:      c.Size(),
		CreatedAt: toRFC3339(c.CreatedAt),
		UpdatedAt: toRFC3339(c.UpdatedAt),
		ExpiresAt: toRFC3339(c.ExpiresAt),
	}
}

func emptyCartDTO(sessionID string) cartDTO {
	return cartDTO{
		SessionID: sessionID,
		Items:     []lineItemDTO{},
	}
}

type orderDTO struct {
	ID              int64         `json:"id"`
	Number          string        `json:"number"`
	Date            string        `json:"date"`
	Status          string        `json:"status"`
	ShippingAddress string        `json:"shippingAddress,omitempty"`
	ShippingDetails string        `json:"shippingDetails,omitempty"`
	Description     string        `json:"description,omitempty"`
	Client          any           `json:"client,omitempty"`
	Manager         any           `json:"manager,omitempty"`
	Items           []lineItemDTO `json:"items"`
	Price           float64       `json:"price"`
	Summary         string        `json:"summary,omitempty"`
}

func orderToDTO(o *orderdom.Order) orderDTO {
	dto := orderDTO{
		ID:              o.ID,
		Number:          o.Number,
		Date:            o.Date,
		Status:          string(o.Status.Title),
		ShippingAddress: o.ShippingAddress,
		ShippingDetails: o.ShippingDetails,
		Description:     o.Description,
		Items:           lineItemDTOs(o.Items()),
		Price:           o.Price(),
		Summary:         o.Summary(),
	}
	if o.Client != nil {
		dto.Client = o.Client
	}
	if o.Manager != nil {
		dto.Manager = o.Manager
	}
	return dto
}
