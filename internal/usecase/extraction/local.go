package extraction

import (
	"slices"
	"strings"

	"github.com/kailas-cloud/thriftfind/internal/domain/synonym"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
	"github.com/kailas-cloud/thriftfind/internal/domain/text"
)

// Local is the deterministic term extractor. It never fails and is the
// fallback whenever the remote extractor cannot answer.
type Local struct {
	synonyms  synonym.Table
	stopWords map[string]struct{}
}

// Option configures a Local extractor.
type Option func(*Local)

// WithSynonyms replaces the synonym table.
func WithSynonyms(t synonym.Table) Option {
	return func(l *Local) { l.synonyms = t }
}

// WithStopWords adds words to the stop-word set.
func WithStopWords(words ...string) Option {
	return func(l *Local) {
		for _, w := range words {
			if n := text.Normalize(w); n != "" {
				l.stopWords[n] = struct{}{}
			}
		}
	}
}

// NewLocal creates a local extractor with the default synonym table and stop words.
func NewLocal(opts ...Option) *Local {
	l := &Local{
		synonyms:  synonym.Default(),
		stopWords: make(map[string]struct{}, len(defaultStopWords)),
	}
	for w := range defaultStopWords {
		l.stopWords[w] = struct{}{}
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Extract splits the query into words, drops stop words and groups the rest
// under their canonical terms. Groups come out in first-seen order.
func (l *Local) Extract(query string) []term.Group {
	words := strings.Fields(text.Normalize(query))

	var order []string
	variants := make(map[string][]string)

	for _, w := range words {
		if _, stop := l.stopWords[w]; stop {
			continue
		}
		canonical := text.NormalizeTerm(l.synonyms.Canonical(w))
		if canonical == "" {
			continue
		}
		if _, ok := variants[canonical]; !ok {
			order = append(order, canonical)
			variants[canonical] = []string{canonical}
		}
		if raw := text.NormalizeTerm(w); raw != "" && !slices.Contains(variants[canonical], raw) {
			variants[canonical] = append(variants[canonical], raw)
		}
	}

	groups := make([]term.Group, 0, len(order))
	for _, c := range order {
		groups = append(groups, term.Group{Term: c, Variants: variants[c]})
	}
	return groups
}
