package tokens

import (
	"strings"
	"unicode"
)

// SanitizeName derives the canonical token key from a style's display name:
// lowercase, whitespace runs collapsed to a single "-", "/" replaced with
// ".", every other character outside a-z/0-9 dropped. The function is pure,
// total and idempotent — "-" and "." survive a second pass because they are
// the sanitizer's own output alphabet.
//
// No uniqueness is guaranteed: two distinct names may sanitize to the same
// key, and callers insert with last-write-wins semantics.
func SanitizeName(name string) string {
	s := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	flushSpace := func() {
		if inSpace {
			b.WriteByte('-')
			inSpace = false
		}
	}

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			inSpace = true
		case r == '/':
			flushSpace()
			b.WriteByte('.')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '.':
			flushSpace()
			b.WriteRune(r)
		}
		// Everything else is dropped.
	}
	flushSpace()

	return b.String()
}
