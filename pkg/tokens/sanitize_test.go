package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "blue", "blue"},
		{"uppercase folded", "Blue 500", "blue-500"},
		{"slash becomes dot", "Primary/Brand", "primary.brand"},
		{"spaced slash", "Primary / Brand Color", "primary-.-brand-color"},
		{"punctuation stripped", "Blue (500)!", "blue-500"},
		{"whitespace run collapsed", "Blue   500", "blue-500"},
		{"tabs count as whitespace", "Blue\t500", "blue-500"},
		{"digits kept", "Gray 04", "gray-04"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestSanitizeName_Idempotent(t *testing.T) {
	inputs := []string{
		"Primary / Brand Color",
		"Blue 500",
		"Shadow/Elevation 2",
		"  padded  ",
		"already-sanitized.name",
		"",
	}
	for _, in := range inputs {
		once := SanitizeName(in)
		assert.Equal(t, once, SanitizeName(once), "input %q", in)
	}
}

func TestSanitizeName_NoUniquenessGuarantee(t *testing.T) {
	// Distinct display names may collapse to the same key; the sanitizer
	// does not prevent it.
	assert.Equal(t, SanitizeName("Blue 500"), SanitizeName("Blue (500)"))
}
