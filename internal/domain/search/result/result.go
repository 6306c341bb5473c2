package result

import (
	"github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/domain/search/source"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

// Result is the outcome of one search request.
type Result struct {
	// Listings are best-first, at most the requested limit.
	Listings []listing.Listing `json:"listings"`
	// Interpretation is nil when the query was empty.
	Interpretation *Interpretation `json:"interpretation,omitempty"`
	Debug          Debug           `json:"debug"`
}

// Interpretation describes how the query was understood.
type Interpretation struct {
	OriginalQuery string        `json:"original_query"`
	TermGroups    []term.Group  `json:"term_groups"`
	Source        source.Source `json:"source"`
}

// Debug carries observability data. Not meant for production decisions.
type Debug struct {
	ColumnsSearched      []string           `json:"columns_searched"`
	TermMatchCounts      map[string]int     `json:"term_match_counts"`
	MinMatchesRequired   int                `json:"min_matches_required"`
	TotalListingsScanned int                `json:"total_listings_scanned"`
	DirectMatches        int                `json:"direct_matches"`
	Scores               map[string]float64 `json:"scores,omitempty"`
}

// Empty returns a result with no listings and no interpretation.
func Empty() Result {
	return Result{Listings: []listing.Listing{}}
}
