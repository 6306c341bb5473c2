package search

import (
	"strings"

	"github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
	"github.com/kailas-cloud/thriftfind/internal/domain/text"
)

// Tier is a field pool, in match priority order.
type Tier int

// Tiers, checked in declaration order.
const (
	TierNone Tier = iota
	TierTag
	TierKeyword
	TierPrimaryText
	TierAIText
)

func (t Tier) String() string {
	switch t {
	case TierTag:
		return "tag"
	case TierKeyword:
		return "keyword"
	case TierPrimaryText:
		return "primary_text"
	case TierAIText:
		return "ai_text"
	default:
		return "none"
	}
}

// Weight returns the score contributed by a match at this tier.
func (t Tier) Weight() float64 {
	switch t {
	case TierTag:
		return WeightTag
	case TierKeyword:
		return WeightKeyword
	case TierPrimaryText:
		return WeightPrimaryText
	case TierAIText:
		return WeightAIText
	default:
		return 0
	}
}

// ColumnsSearched lists the listing columns feeding the pools, in tier order.
var ColumnsSearched = []string{
	"moods", "styles", "intents",
	"keywords", "ai_suggested_keywords",
	"title", "description", "story_text", "category",
	"ai_generated_title", "ai_generated_description",
}

// MatchResult is the outcome of matching one term group against one listing.
type MatchResult struct {
	Matched bool
	Weight  float64
	Tier    Tier
}

// Pools are a listing's normalized field pools.
type Pools struct {
	Tags        []string
	Keywords    []string
	PrimaryText string
	AIText      string
}

// BuildPools normalizes a listing's fields into the four match pools.
func BuildPools(l *listing.Listing) Pools {
	return Pools{
		Tags:        normalizeAll(l.Moods, l.Styles, l.Intents),
		Keywords:    normalizeAll(l.Keywords, l.AISuggestedKeywords),
		PrimaryText: text.Join(l.Title, l.Description, l.StoryText, l.Category),
		AIText:      text.Join(l.AIGeneratedTitle, l.AIGeneratedDescription),
	}
}

func normalizeAll(columns ...listing.Tags) []string {
	var out []string
	for _, col := range columns {
		for _, v := range col {
			if n := text.Normalize(v); n != "" {
				out = append(out, n)
			}
		}
	}
	return out
}

// MatchTermGroup tests g against a listing's pools in tier order and stops at
// the first tier containing any variant.
func MatchTermGroup(p *Pools, g term.Group) MatchResult {
	switch {
	case anyVariantInList(p.Tags, g.Variants):
		return hit(TierTag)
	case anyVariantInList(p.Keywords, g.Variants):
		return hit(TierKeyword)
	case anyVariantInText(p.PrimaryText, g.Variants):
		return hit(TierPrimaryText)
	case anyVariantInText(p.AIText, g.Variants):
		return hit(TierAIText)
	}
	return MatchResult{}
}

func hit(t Tier) MatchResult {
	return MatchResult{Matched: true, Weight: t.Weight(), Tier: t}
}

// Containment is substring-based: "art" matches "cart". Accepted precision
// trade-off in exchange for matching compound words and plurals.
func anyVariantInList(pool, variants []string) bool {
	for _, item := range pool {
		if anyVariantInText(item, variants) {
			return true
		}
	}
	return false
}

func anyVariantInText(s string, variants []string) bool {
	if s == "" {
		return false
	}
	for _, v := range variants {
		if v != "" && strings.Contains(s, v) {
			return true
		}
	}
	return false
}
