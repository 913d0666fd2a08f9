// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidUser = errors.New("user: invalid")
)

// RoleTitle is the fixed role vocabulary.
type RoleTitle string

const (
	RoleClient        RoleTitle = "CLIENT"
	RoleAdministrator RoleTitle = "ADMINISTRATOR"
	RoleManager       RoleTitle = "MANAGER"
)

// Role is a persisted role row. One role has many users.
type Role struct {
	ID          int64     `json:"id"`
	Title       RoleTitle `json:"title"`
	Description string    `json:"description"`
}

// CanEditOrders reports whether the role may view or edit orders at all.
func (r Role) CanEditOrders() bool {
	return r.Title == RoleAdministrator || r.Title == RoleManager
}

// User is a registered account: a client placing orders, or a staff member
// (manager/administrator) handling them.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Password    string `json:"-"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Role        Role   `json:"role"`
}

// NewUser builds a user with the given contact fields and role.
func NewUser(name, email, phone string, role Role) User {
	return User{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
		Role:  role,
	}
}

// EqualsKey is the business equality key: name + email + phone.
func (u *User) EqualsKey() string {
	return u.Name + u.Email + u.Phone
}

// SetContact replaces the contact triple, null-coalescing to "".
// Used by the order-update workflow when staff correct client details.
func (u *User) SetContact(name, email, phone string) {
	u.Name = strings.TrimSpace(name)
	u.Email = strings.TrimSpace(email)
	u.Phone = strings.TrimSpace(phone)
}

// Initialize is the bulk field replace used by account administration.
func (u *User) Initialize(name, username, password, email, phone, description string, role Role) {
	u.Name = strings.TrimSpace(name)
	u.Username = strings.TrimSpace(username)
	u.Password = password
	u.Email = strings.TrimSpace(email)
	u.Phone = strings.TrimSpace(phone)
	u.Description = strings.TrimSpace(description)
	u.Role = role
}
