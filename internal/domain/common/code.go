// internal/domain/common/code.go
package common

import (
	"math/rand"
	"strings"
	"time"
)

// CodeAlphabet is the character set for generated order numbers.
// The set deliberately avoids ambiguous letters (no G-J, no O).
const CodeAlphabet = "ABCDEFK1234567890"

// CodeLength is the default length of a generated code.
const CodeLength = 6

// DatePattern renders timestamps the way order dates are shown to staff,
// e.g. "Fri, 29 Aug 2026, 14:03:05".
const DatePattern = "Mon, 2 Jan 2006, 15:04:05"

// storeZone is the fixed display zone for order dates (GMT+3).
var storeZone = time.FixedZone("GMT+3", 3*60*60)

// RandomCode returns a random code using the default alphabet and length.
func RandomCode() string {
	return RandomCodeFrom(CodeAlphabet, CodeLength)
}

// RandomCodeFrom returns a random code of length n drawn from alphabet.
// Empty alphabet or non-positive n yields "".
func RandomCodeFrom(alphabet string, n int) string {
	if alphabet == "" || n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// FormatDate converts t to the store's display string in the store zone.
func FormatDate(t time.Time) string {
	return t.In(storeZone).Format(DatePattern)
}
