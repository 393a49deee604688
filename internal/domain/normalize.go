package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord prepares a word for storage and comparison: Unicode NFC
// composition followed by lowercasing. Apostrophes and hyphens are preserved
// so contractions keep their surface form.
func NormalizeWord(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}
