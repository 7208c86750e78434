package core

import "strings"

// CleanString normalizes free-text input: surrounding whitespace is dropped,
// and the value is lowercased when lower is true (email addresses and other
// case-insensitive identifiers).
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		s = strings.ToLower(s)
	}
	return s
}
