package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only spaces", "   \t ", ""},
		{"collapse", "ACME   BV\t\tAmsterdam", "ACME BV Amsterdam"},
		{"newlines", "line one\r\nline two", "line one line two"},
		{"no-break space", "ACME\u00a0\u00a0BV\u00a0", "ACME BV"},
		{"hyphen", "A - B", "A-B"},
		{"hyphen one side", "A -B", "A-B"},
		{"double hyphen", "a - - b", "a--b"},
		{"punctuation", "factuur 12 , periode 3 : maart .", "factuur 12, periode 3: maart."},
		{"semicolon", "a ; b", "a; b"},
		{"trim", "  padded  ", "padded"},
		{"leading punctuation", " , x", ", x"},
		{"mixed", " Termijn  01 - 2024 ;  huur ", "Termijn 01-2024; huur"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Properties(t *testing.T) {
	inputs := []string{
		"a  -  b , c ; d : e . f",
		"  x  -  y  ",
		"  - - -  ",
		"Omschrijving:   NL12 RABO 0123 . . ,",
		"\t\n\v\f\r",
	}
	for _, in := range inputs {
		out := Normalize(in)
		assert.NotContains(t, out, "  ", "input %q", in)
		assert.NotContains(t, out, " -", "input %q", in)
		assert.NotContains(t, out, "- ", "input %q", in)
		for _, p := range []string{" .", " ,", " ;", " :"} {
			assert.NotContains(t, out, p, "input %q", in)
		}
		assert.Equal(t, strings.TrimSpace(out), out)
		assert.Equal(t, out, Normalize(out), "idempotent for %q", in)
	}
}
