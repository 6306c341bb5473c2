// Package term defines term groups: a canonical search concept plus every
// spelling or synonym that counts as a hit for it.
package term

import (
	"slices"

	"github.com/kailas-cloud/thriftfind/internal/domain/synonym"
	"github.com/kailas-cloud/thriftfind/internal/domain/text"
)

// Group is a canonical term and its accepted variants.
// Variants always contains Term.
type Group struct {
	Term     string   `json:"term"`
	Variants []string `json:"variants"`
}

// Has reports whether v is one of the group's variants.
func (g Group) Has(v string) bool {
	return slices.Contains(g.Variants, v)
}

// Terms returns the canonical term of every group, in order.
func Terms(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Term
	}
	return out
}

// Normalizer canonicalizes raw term groups coming from any extractor.
type Normalizer struct {
	synonyms synonym.Table
}

// NewNormalizer creates a normalizer bound to a synonym table.
func NewNormalizer(synonyms synonym.Table) *Normalizer {
	return &Normalizer{synonyms: synonyms}
}

// Normalize returns de-duplicated, canonical groups. Groups whose primary term
// resolves to empty are dropped; groups that canonicalize to the same term are
// merged. Order follows the first occurrence of each canonical term.
func (n *Normalizer) Normalize(raw []Group) []Group {
	var (
		order  []string
		merged = make(map[string]*variantSet)
	)

	for _, g := range raw {
		base := text.NormalizeTerm(g.Term)
		if base == "" {
			continue
		}
		// Applied twice: a remote extractor may hand back an informal word whose
		// canonical form is itself mapped.
		canonical := n.canonical(n.canonical(base))
		if canonical == "" {
			continue
		}

		set, ok := merged[canonical]
		if !ok {
			set = newVariantSet()
			merged[canonical] = set
			order = append(order, canonical)
		}
		set.add(canonical)
		set.add(base)

		for _, v := range g.Variants {
			nv := text.NormalizeTerm(v)
			if nv == "" {
				continue
			}
			set.add(nv)
			set.add(n.canonical(nv))
		}
	}

	out := make([]Group, 0, len(order))
	for _, t := range order {
		out = append(out, Group{Term: t, Variants: merged[t].items})
	}
	return out
}

func (n *Normalizer) canonical(word string) string {
	return text.NormalizeTerm(n.synonyms.Canonical(word))
}

// variantSet is an insertion-ordered string set.
type variantSet struct {
	items []string
	seen  map[string]struct{}
}

func newVariantSet() *variantSet {
	return &variantSet{seen: make(map[string]struct{})}
}

func (s *variantSet) add(v string) {
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}
