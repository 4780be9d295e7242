package registry

import "regexp"

// The two line grammars the registry uses for assignments. Both end with a
// "(hex)" or "(base 16)" marker followed by the vendor name.
var (
	// Three 2-hex-digit groups, each pair optionally separated by a colon,
	// hyphen, or single space: "00-00-0C   (hex)  CISCO SYSTEMS, INC."
	tripletPattern = regexp.MustCompile(`^\s*([0-9A-Fa-f]{2})[-: ]?([0-9A-Fa-f]{2})[-: ]?([0-9A-Fa-f]{2})\s*\((?:hex|base 16)\)\s*(.+?)\s*$`)

	// A single contiguous 6-hex-digit token: "00000C   (base 16)  CISCO SYSTEMS, INC."
	sixPattern = regexp.MustCompile(`^\s*([0-9A-Fa-f]{6})\s*\((?:hex|base 16)\)\s*(.+?)\s*$`)
)

// ExtractLine matches one line against the two accepted grammars, triplet
// form first, and returns the raw key and vendor name. Lines matching
// neither grammar return ok == false; the registry text is full of
// non-assignment lines, so a failed match is not an error.
func ExtractLine(line string) (rawKey, rawVendor string, ok bool) {
	if m := tripletPattern.FindStringSubmatch(line); m != nil {
		return m[1] + m[2] + m[3], m[4], true
	}
	if m := sixPattern.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}
