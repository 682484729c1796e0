// Package textnorm cleans up free-text fields from bank exports.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	dashSpace  = regexp.MustCompile(` *- *`)
	spacePunct = regexp.MustCompile(` +([.,;:])`)
)

// Normalize collapses whitespace runs (including no-break spaces) into a
// single space, drops spaces around hyphens and before . , ; : and trims
// the result.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// strings.Fields splits on unicode.IsSpace, which covers U+00A0.
	s = strings.Join(strings.Fields(s), " ")
	s = dashSpace.ReplaceAllString(s, "-")
	s = spacePunct.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
