// Package registry parses the IEEE OUI registry text into a normalized
// prefix-to-vendor table.
//
// The upstream registry is line oriented. Data lines come in two shapes,
// a separated triplet ("00-00-0C   (hex)  CISCO SYSTEMS, INC.") and a
// contiguous six-digit form ("00000C     (base 16)  CISCO SYSTEMS, INC.");
// everything else in the file is headers, addresses, and blank separators
// that carry no assignment and are skipped.
package registry

import (
	"errors"
	"strings"
)

// GenericVendor is the placeholder name the IEEE uses for blocks without a
// published owner. Entries carrying it lose to any concrete vendor name.
const GenericVendor = "IEEE REGISTRATION AUTHORITY"

// ErrEmptyTable indicates that input was read successfully but contained no
// valid entries, which points at a format problem rather than connectivity.
var ErrEmptyTable = errors.New("parsed registry table is empty")

// Table maps a 6-hex-digit uppercase OUI prefix to its vendor name.
type Table map[string]string

// NewTable returns an empty table.
func NewTable() Table {
	return make(Table)
}

// Add normalizes a raw (key, vendor) pair and folds it into the table.
// It reports whether the table was modified.
//
// Pairs whose normalized key is not exactly six hex digits, or whose
// normalized vendor is empty, are dropped. On a key collision a concrete
// vendor name replaces the generic placeholder; in every other case the
// existing entry wins, so the first concrete name seen for a prefix sticks
// regardless of line order.
func (t Table) Add(rawKey, rawVendor string) bool {
	key := NormalizeKey(rawKey)
	vendor := NormalizeVendor(rawVendor)

	if !validKey(key) || vendor == "" {
		return false
	}

	existing, present := t[key]
	if !present {
		t[key] = vendor
		return true
	}
	if vendor != GenericVendor && existing == GenericVendor {
		t[key] = vendor
		return true
	}
	return false
}

// Vendor returns the vendor name registered for an already-normalized key.
func (t Table) Vendor(key string) (string, bool) {
	vendor, ok := t[key]
	return vendor, ok
}

// Lookup returns the vendor for a MAC address or prefix in any common
// notation ("00:60:94:aa:bb:cc", "00-60-94", "006094ABCDEF").
func (t Table) Lookup(addr string) (string, bool) {
	key := NormalizeKey(addr)
	if !validKey(key) {
		return "", false
	}
	vendor, ok := t[key]
	return vendor, ok
}

// Len returns the number of entries in the table.
func (t Table) Len() int {
	return len(t)
}

// Parse builds a table from the full registry text.
func Parse(text string) Table {
	t := NewTable()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rawKey, rawVendor, ok := ExtractLine(line)
		if !ok {
			continue
		}
		t.Add(rawKey, rawVendor)
	}
	return t
}
