package services

import "strings"

// SanitizeFilename replaces every rune outside [A-Za-z0-9_.-] with '_'.
// The result has the same number of runes as name.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
