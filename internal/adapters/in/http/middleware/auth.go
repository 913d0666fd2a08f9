// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	orderdom "storefront/internal/domain/order"
	userdom "storefront/internal/domain/user"
)

// FirebaseAuthClient aliases the firebase auth client so wiring code can
// take *middleware.FirebaseAuthClient.
type FirebaseAuthClient = fbauth.Client

// context keys use a private type to avoid collisions (SA1029).
type ctxKey struct{ name string }

var ctxKeyUser = ctxKey{name: "currentUser"}

// AuthMiddleware verifies
//
//   - Authorization: Bearer <ID_TOKEN>
//
// and resolves the Firebase UID to a user row (users.username stores the
// UID), putting the user into the request context.
type AuthMiddleware struct {
	FirebaseAuth *FirebaseAuthClient
	Users        userdom.Repository
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.FirebaseAuth == nil || m.Users == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		token, err := m.FirebaseAuth.VerifyIDToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(token.UID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		u, err := m.Users.GetByUsername(r.Context(), uid)
		if err != nil {
			log.Printf("[auth] path=%s uid=%s has no user row", r.URL.Path, uid)
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUser, &u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStaff rejects requests whose user role may not touch orders.
// Chain after Handler.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !u.Role.CanEditOrders() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the authenticated user injected by Handler.
func CurrentUser(r *http.Request) (*userdom.User, bool) {
	v := r.Context().Value(ctxKeyUser)
	if v == nil {
		return nil, false
	}
	u, ok := v.(*userdom.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}

// CurrentActor maps the authenticated user to the policy actor.
func CurrentActor(r *http.Request) (orderdom.Actor, bool) {
	u, ok := CurrentUser(r)
	if !ok {
		return orderdom.Actor{}, false
	}
	return orderdom.Actor{ID: u.ID, Role: u.Role.Title}, true
}
