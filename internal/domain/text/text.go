// Package text holds the normalization every matching step relies on:
// query words, term variants and listing fields all go through Normalize
// before they are compared.
package text

import "strings"

// Normalize lowercases s, replaces every character outside [a-z0-9\s-] with a
// space, collapses whitespace runs and trims. It never fails; garbage in yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	// pendingSpace defers writing separators so runs collapse and edges trim.
	pendingSpace := false
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		default:
			pendingSpace = true
		}
	}
	return b.String()
}

// NormalizeTerm normalizes s and rejects results too short to be a search term.
// Single characters and empty strings return "".
func NormalizeTerm(s string) string {
	n := Normalize(s)
	if len(n) <= 1 {
		return ""
	}
	return n
}

// Join normalizes each part and joins the non-empty results with single spaces.
func Join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := Normalize(p); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
