package utils

import "strings"

// NormalizeProductName normalizes a product name for stock matching.
// Order lines reference stock rows by producer plus product name, so the
// comparison is done lowercased and trimmed on both sides.
func NormalizeProductName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
