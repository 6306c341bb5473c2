package search

import (
	"slices"

	"github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/domain/search/result"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

// Rank filters candidates by the minimum-match threshold, scores the survivors
// and returns at most limit of them, best first. Ties keep candidate order.
func Rank(candidates []listing.Listing, groups []term.Group, limit int) ([]listing.Listing, result.Debug) {
	debug := result.Debug{
		ColumnsSearched:    slices.Clone(ColumnsSearched),
		TermMatchCounts:    make(map[string]int, len(groups)),
		MinMatchesRequired: MinMatchesRequired(len(groups)),
	}
	for _, g := range groups {
		debug.TermMatchCounts[g.Term] = 0
	}
	if len(groups) == 0 {
		return []listing.Listing{}, debug
	}

	debug.TotalListingsScanned = len(candidates)

	type scored struct {
		idx   int
		score float64
	}
	kept := make([]scored, 0, len(candidates))

	for i := range candidates {
		pools := BuildPools(&candidates[i])

		var (
			matched int
			weight  float64
		)
		for _, g := range groups {
			m := MatchTermGroup(&pools, g)
			if !m.Matched {
				continue
			}
			matched++
			weight += m.Weight
			debug.TermMatchCounts[g.Term]++
		}

		if matched < debug.MinMatchesRequired {
			continue
		}
		kept = append(kept, scored{idx: i, score: weight + float64(matched)*MatchBonus})
	}

	debug.DirectMatches = len(kept)

	slices.SortStableFunc(kept, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	if limit >= 0 && len(kept) > limit {
		kept = kept[:limit]
	}

	ranked := make([]listing.Listing, len(kept))
	debug.Scores = make(map[string]float64, len(kept))
	for i, s := range kept {
		ranked[i] = candidates[s.idx]
		debug.Scores[ranked[i].ID] = s.score
	}
	return ranked, debug
}
