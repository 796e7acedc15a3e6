package employee

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeEmail normalizes an email for storage and comparison: trim,
// lowercase, strip diacritics. Idempotent; blank input yields "".
func SanitizeEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return ""
	}
	email = strings.ToLower(strings.TrimSpace(email))
	out, _, err := transform.String(stripDiacritics, email)
	if err != nil {
		return email
	}
	return out
}
