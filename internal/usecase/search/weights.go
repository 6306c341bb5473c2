package search

// Scoring policy. Tunable; the matching algorithm does not depend on the values.
const (
	WeightTag         = 3.0
	WeightKeyword     = 2.0
	WeightPrimaryText = 1.0
	WeightAIText      = 0.5

	// MatchBonus is added per matched term group, rewarding breadth of coverage.
	MatchBonus = 2.0

	// SupermajorityPercent of term groups (rounded up) must match once a query
	// has at least SupermajorityMinGroups groups; shorter queries require all.
	SupermajorityPercent   = 70
	SupermajorityMinGroups = 3
)

// Candidate window sizing.
const (
	DefaultLimit        = 24
	FetchMultiplier     = 20
	MinCandidateWindow  = 200
	BaseCandidateWindow = 500
)

// MinMatchesRequired returns how many of n term groups a listing must match.
func MinMatchesRequired(n int) int {
	if n >= SupermajorityMinGroups {
		// Integer ceiling keeps 0.7*n free of float rounding.
		return (n*SupermajorityPercent + 99) / 100
	}
	return n
}

// CandidateWindow returns how many listings to fetch for a requested limit.
func CandidateWindow(limit int) int {
	return max(limit*FetchMultiplier, MinCandidateWindow, BaseCandidateWindow)
}
