// Package synonym maps informal or variant words onto the canonical term
// the matcher searches for.
package synonym

import (
	"maps"

	"github.com/kailas-cloud/thriftfind/internal/domain/text"
)

// defaultEntries is the built-in synonym policy. Keys are informal words,
// values are the canonical term they collapse to.
var defaultEntries = map[string]string{
	// whimsical
	"funky":    "whimsical",
	"playful":  "whimsical",
	"quirky":   "whimsical",
	"whimsy":   "whimsical",
	"fun":      "whimsical",
	"silly":    "whimsical",
	"eclectic": "whimsical",

	// vintage
	"antique":   "vintage",
	"retro":     "vintage",
	"classic":   "vintage",
	"old":       "vintage",
	"oldschool": "vintage",
	"heirloom":  "vintage",

	// mid-century
	"midcenturymodern": "mid-century",
	"midcentury":       "mid-century",
	"mcm":              "mid-century",

	// cozy
	"cosy":  "cozy",
	"comfy": "cozy",
	"snug":  "cozy",
	"warm":  "cozy",

	// minimalist
	"minimal":    "minimalist",
	"minimalism": "minimalist",
	"sleek":      "minimalist",

	// handmade
	"handcrafted": "handmade",
	"homemade":    "handmade",
	"artisan":     "handmade",
	"crafted":     "handmade",

	// boho
	"bohemian": "boho",
	"hippie":   "boho",

	// rustic
	"farmhouse": "rustic",
	"country":   "rustic",

	// gift
	"present":  "gift",
	"presents": "gift",
	"gifts":    "gift",

	// elegant
	"fancy":  "elegant",
	"classy": "elegant",
	"chic":   "elegant",

	// colorful
	"colourful": "colorful",
	"bright":    "colorful",
	"vibrant":   "colorful",

	// decor
	"decoration":  "decor",
	"decorations": "decor",
	"ornament":    "decor",

	// furniture
	"furnishings": "furniture",
	"furnishing":  "furniture",

	// jewelry
	"jewellery": "jewelry",
	"jewels":    "jewelry",
}

// Table is an immutable word → canonical term mapping. The zero value maps
// nothing and passes every word through.
type Table struct {
	entries map[string]string
}

var defaultTable = New(defaultEntries)

// Default returns the built-in table. Shared read-only across the process.
func Default() Table {
	return defaultTable
}

// New builds a table from entries. Keys and values are normalized; entries
// that normalize to empty on either side are dropped.
func New(entries map[string]string) Table {
	t := Table{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		nk, nv := text.Normalize(k), text.Normalize(v)
		if nk == "" || nv == "" {
			continue
		}
		t.entries[nk] = nv
	}
	return t
}

// Extend returns a new table with extra entries layered over t.
func (t Table) Extend(extra map[string]string) Table {
	merged := make(map[string]string, len(t.entries)+len(extra))
	maps.Copy(merged, t.entries)
	for k, v := range New(extra).entries {
		merged[k] = v
	}
	return Table{entries: merged}
}

// Canonical returns the canonical form of an already-normalized word, or the
// word itself when unmapped. Lookup is exact-match only.
func (t Table) Canonical(word string) string {
	if c, ok := t.entries[word]; ok {
		return c
	}
	return word
}

// Len returns the number of mappings.
func (t Table) Len() int {
	return len(t.entries)
}
