package domain

import "strings"

// NormalizeRegion canonicalizes user input into the result cache key form:
// surrounding whitespace removed, lowercased. Idempotent.
func NormalizeRegion(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DisplayRegion trims user input without changing its casing. This is the
// form kept for history and export file names.
func DisplayRegion(s string) string {
	return strings.TrimSpace(s)
}
