// Package email normalizes and sanity-checks email addresses.
package email

import "strings"

// Normalize lowercases the address and strips surrounding whitespace. The
// unique index on the email column compares exact bytes, so a single
// canonical form keeps Jan@example.com and jan@example.com from coexisting.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Valid reports whether s has a local part and a domain around a single '@'.
// Anything stricter is left to the mail system.
func Valid(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return strings.IndexByte(s[at+1:], '@') < 0
}
