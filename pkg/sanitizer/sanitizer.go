// Package sanitizer normalizes raw user input before validation.
//
// Every required string field in the data model must be non-empty after
// trimming surrounding whitespace; the helpers here apply that trimming plus
// inner-whitespace collapsing so validation sees canonical values.
package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

func NormalizeLocation(location string) string {
	return TrimAndNormalize(location)
}

// NormalizeEmail trims and lowercases. Addresses compare case-insensitively
// in practice, so store them canonically.
func NormalizeEmail(email string) string {
	return strings.ToLower(TrimAndNormalize(email))
}

func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}
