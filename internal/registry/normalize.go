package registry

import "strings"

const keyLength = 6

// NormalizeKey canonicalizes a raw block identifier: trim, upper-case,
// strip colon and hyphen separators, truncate to the first six characters.
// It never errors; callers reject results that are not six hex digits, so
// tokens with fewer than six hex characters come out short and get dropped
// rather than padded.
func NormalizeKey(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ":", "")
	s = strings.ReplaceAll(s, "-", "")
	if len(s) > keyLength {
		s = s[:keyLength]
	}
	return s
}

// NormalizeVendor collapses runs of whitespace to single spaces, trims,
// and upper-cases a vendor name.
func NormalizeVendor(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), " "))
}

// validKey reports whether key is exactly six uppercase hex digits.
func validKey(key string) bool {
	if len(key) != keyLength {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
