package thriftfind

import (
	"slices"

	domlisting "github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/domain/search/result"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

func toDomainListing(l *Listing) domlisting.Listing {
	status := l.Status
	if status == "" {
		status = domlisting.StatusActive
	}
	return domlisting.Listing{
		ID:                     l.ID,
		SellerID:               l.SellerID,
		Price:                  l.Price,
		Title:                  l.Title,
		Description:            l.Description,
		StoryText:              l.StoryText,
		Category:               l.Category,
		Moods:                  domlisting.ParseTags(l.Moods),
		Styles:                 domlisting.ParseTags(l.Styles),
		Intents:                domlisting.ParseTags(l.Intents),
		Keywords:               domlisting.ParseTags(l.Keywords),
		AISuggestedKeywords:    domlisting.ParseTags(l.AISuggestedKeywords),
		AIGeneratedTitle:       l.AIGeneratedTitle,
		AIGeneratedDescription: l.AIGeneratedDescription,
		Status:                 status,
		CreatedAt:              l.CreatedAt,
	}
}

func fromDomainListing(l *domlisting.Listing) Listing {
	return Listing{
		ID:                     l.ID,
		SellerID:               l.SellerID,
		Price:                  l.Price,
		Title:                  l.Title,
		Description:            l.Description,
		StoryText:              l.StoryText,
		Category:               l.Category,
		Moods:                  slices.Clone([]string(l.Moods)),
		Styles:                 slices.Clone([]string(l.Styles)),
		Intents:                slices.Clone([]string(l.Intents)),
		Keywords:               slices.Clone([]string(l.Keywords)),
		AISuggestedKeywords:    slices.Clone([]string(l.AISuggestedKeywords)),
		AIGeneratedTitle:       l.AIGeneratedTitle,
		AIGeneratedDescription: l.AIGeneratedDescription,
		Status:                 l.Status,
		CreatedAt:              l.CreatedAt,
	}
}

func toDomainGroups(groups []TermGroup) []term.Group {
	out := make([]term.Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, term.Group{Term: g.Term, Variants: slices.Clone(g.Variants)})
	}
	return out
}

func fromDomainGroups(groups []term.Group) []TermGroup {
	out := make([]TermGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, TermGroup{Term: g.Term, Variants: slices.Clone(g.Variants)})
	}
	return out
}

func fromDomainResult(r *result.Result) *SearchResult {
	out := &SearchResult{
		Listings: make([]Listing, 0, len(r.Listings)),
		Debug: DebugInfo{
			ColumnsSearched:      slices.Clone(r.Debug.ColumnsSearched),
			TermMatchCounts:      r.Debug.TermMatchCounts,
			MinMatchesRequired:   r.Debug.MinMatchesRequired,
			TotalListingsScanned: r.Debug.TotalListingsScanned,
			DirectMatches:        r.Debug.DirectMatches,
			Scores:               r.Debug.Scores,
		},
	}
	for i := range r.Listings {
		out.Listings = append(out.Listings, fromDomainListing(&r.Listings[i]))
	}
	if r.Interpretation != nil {
		out.Interpretation = &Interpretation{
			OriginalQuery: r.Interpretation.OriginalQuery,
			TermGroups:    fromDomainGroups(r.Interpretation.TermGroups),
			Source:        Source(r.Interpretation.Source),
		}
	}
	return out
}
