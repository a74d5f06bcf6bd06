package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// StringOr returns the provided value, or def when it was not provided.
func StringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
