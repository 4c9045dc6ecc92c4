// Package textutil provides small text helpers shared across features.
package textutil

import "strings"

// Normalize collapses every run of whitespace (spaces, tabs, line and paragraph
// breaks) into a single space and trims both ends.
// Whitespace-only input normalizes to the empty string.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
