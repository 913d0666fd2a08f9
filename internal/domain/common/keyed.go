// internal/domain/common/keyed.go
package common

// Keyed is implemented by entities whose equality is defined by a business
// key rather than the storage id (order number, product article, user
// contact triple, ...).
type Keyed interface {
	EqualsKey() string
}

// SameKey reports whether two keyed entities are equivalent by business key.
func SameKey(a, b Keyed) bool {
	if a == nil || b == nil {
		return false
	}
	return a.EqualsKey() == b.EqualsKey()
}
