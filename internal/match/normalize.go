package match

import (
	"strings"
)

// NormalizeKeyword normalizes a table keyword for comparison.
// The normalization pipeline:
// 1. Strip separators (_, -, spaces).
// 2. Case-fold to lower.
func NormalizeKeyword(s string) string {
	return strings.ToLower(stripSeparators(strings.TrimSpace(s)))
}

// KeywordsEqual reports whether two keywords are the same after normalization.
func KeywordsEqual(a, b string) bool {
	return NormalizeKeyword(a) == NormalizeKeyword(b)
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
