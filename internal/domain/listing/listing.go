// Package listing holds the read-only projection of a marketplace listing
// that the search engine scores.
package listing

import "time"

// StatusActive is the only status eligible for search.
const StatusActive = "active"

// Listing is a marketplace item as seen by search. Search never mutates it.
type Listing struct {
	ID       string  `json:"id"`
	SellerID string  `json:"seller_id,omitempty"`
	Price    float64 `json:"price"`

	// Primary text pool.
	Title       string `json:"title"`
	Description string `json:"description"`
	StoryText   string `json:"story_text"`
	Category    string `json:"category"`

	// Tag pool.
	Moods   Tags `json:"moods"`
	Styles  Tags `json:"styles"`
	Intents Tags `json:"intents"`

	// Keyword pool.
	Keywords            Tags `json:"keywords"`
	AISuggestedKeywords Tags `json:"ai_suggested_keywords"`

	// AI text pool.
	AIGeneratedTitle       string `json:"ai_generated_title"`
	AIGeneratedDescription string `json:"ai_generated_description"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// IsActive reports whether the listing may appear in search results.
func (l *Listing) IsActive() bool {
	return l.Status == StatusActive
}
