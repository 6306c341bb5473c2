package thriftfind

import "time"

// Source names the component that produced a result's term groups.
type Source string

// Source constants.
const (
	SourceOpenAI Source = "openai"
	SourceLocal  Source = "local"
	SourceVision Source = "vision"
)

// Listing is a marketplace item. Only listings with Status "active" are
// searchable.
type Listing struct {
	ID       string
	SellerID string
	Price    float64

	Title       string
	Description string
	StoryText   string
	Category    string

	Moods   []string
	Styles  []string
	Intents []string

	Keywords            []string
	AISuggestedKeywords []string

	AIGeneratedTitle       string
	AIGeneratedDescription string

	Status    string // defaults to "active" on upsert
	CreatedAt time.Time
}

// TermGroup is one search concept and the spellings that count as a hit for
// it. Variants may be empty; the term itself always matches.
type TermGroup struct {
	Term     string
	Variants []string
}

// Interpretation explains how a query was understood.
type Interpretation struct {
	OriginalQuery string
	TermGroups    []TermGroup
	Source        Source
}

// DebugInfo exposes ranking internals.
type DebugInfo struct {
	ColumnsSearched      []string
	TermMatchCounts      map[string]int
	MinMatchesRequired   int
	TotalListingsScanned int
	DirectMatches        int
	Scores               map[string]float64
}

// SearchResult is a ranked page of listings.
type SearchResult struct {
	Listings       []Listing
	Interpretation *Interpretation // nil for a blank query
	Debug          DebugInfo
}
