package search

import (
	"testing"

	"github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

func TestMinMatchesRequired(t *testing.T) {
	tests := []struct {
		groups int
		want   int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{5, 4},
		{10, 7},
	}
	for _, tt := range tests {
		if got := MinMatchesRequired(tt.groups); got != tt.want {
			t.Errorf("MinMatchesRequired(%d) = %d, want %d", tt.groups, got, tt.want)
		}
	}
}

func TestCandidateWindow(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{1, 500},
		{24, 500},
		{25, 500},
		{26, 520},
		{100, 2000},
	}
	for _, tt := range tests {
		if got := CandidateWindow(tt.limit); got != tt.want {
			t.Errorf("CandidateWindow(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestRank_EmptyGroups(t *testing.T) {
	candidates := []listing.Listing{{ID: "a", Title: "lamp"}}

	got, debug := Rank(candidates, nil, 10)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil listings, got %v", got)
	}
	if debug.TotalListingsScanned != 0 {
		t.Errorf("expected no scan, got %d", debug.TotalListingsScanned)
	}
	if debug.MinMatchesRequired != 0 {
		t.Errorf("expected threshold 0, got %d", debug.MinMatchesRequired)
	}
}

func TestRank_TwoGroupsRequireBoth(t *testing.T) {
	groups := []term.Group{group("brass"), group("lamp")}
	candidates := []listing.Listing{
		{ID: "one", Title: "Brass candle holder"},
		{ID: "both", Title: "Brass lamp"},
	}

	got, debug := Rank(candidates, groups, 10)
	if len(got) != 1 || got[0].ID != "both" {
		t.Fatalf("expected only 'both', got %v", ids(got))
	}
	if debug.MinMatchesRequired != 2 {
		t.Errorf("threshold: got %d, want 2", debug.MinMatchesRequired)
	}
	if debug.TermMatchCounts["brass"] != 2 || debug.TermMatchCounts["lamp"] != 1 {
		t.Errorf("term counts: got %v", debug.TermMatchCounts)
	}
	if debug.DirectMatches != 1 {
		t.Errorf("direct matches: got %d", debug.DirectMatches)
	}
}

func TestRank_FourGroupsAllowOneMiss(t *testing.T) {
	groups := []term.Group{group("brass"), group("lamp"), group("desk"), group("green")}
	candidates := []listing.Listing{
		{ID: "three", Title: "Brass desk lamp"},
		{ID: "two", Title: "Brass lamp"},
	}

	got, debug := Rank(candidates, groups, 10)
	if len(got) != 1 || got[0].ID != "three" {
		t.Fatalf("expected only 'three', got %v", ids(got))
	}
	if debug.MinMatchesRequired != 3 {
		t.Errorf("threshold: got %d, want 3", debug.MinMatchesRequired)
	}
	if debug.TermMatchCounts["green"] != 0 {
		t.Errorf("expected zero count for unmatched term, got %d", debug.TermMatchCounts["green"])
	}
}

func TestRank_NoDoubleCounting(t *testing.T) {
	groups := []term.Group{group("vintage")}
	candidates := []listing.Listing{
		{ID: "a", Moods: listing.Tags{"vintage"}, Title: "Vintage lamp"},
	}

	_, debug := Rank(candidates, groups, 10)
	// tag weight 3 + one match bonus 2
	if got := debug.Scores["a"]; got != 5 {
		t.Errorf("score: got %v, want 5", got)
	}
}

func TestRank_Scenarios(t *testing.T) {
	groups := []term.Group{group("whimsical"), group("gift"), group("vintage")}

	t.Run("two of three excluded", func(t *testing.T) {
		candidates := []listing.Listing{
			{ID: "l1", Moods: listing.Tags{"whimsical"}, Category: "vintage"},
		}
		got, debug := Rank(candidates, groups, 24)
		if len(got) != 0 {
			t.Fatalf("expected empty result, got %v", ids(got))
		}
		if debug.MinMatchesRequired != 3 {
			t.Errorf("threshold: got %d, want 3", debug.MinMatchesRequired)
		}
	})

	t.Run("category counts as primary text", func(t *testing.T) {
		candidates := []listing.Listing{
			{ID: "l1", Moods: listing.Tags{"whimsical"}, Category: "vintage", Description: "A perfect gift."},
		}
		got, debug := Rank(candidates, groups, 24)
		if len(got) != 1 {
			t.Fatalf("expected one listing, got %v", ids(got))
		}
		// 3 (whimsical tag) + 1 (vintage category) + 1 (gift description) + 3*2
		if debug.Scores["l1"] != 11 {
			t.Errorf("score: got %v, want 11", debug.Scores["l1"])
		}
	})

	t.Run("style tag", func(t *testing.T) {
		candidates := []listing.Listing{
			{ID: "l1", Moods: listing.Tags{"whimsical"}, Styles: listing.Tags{"vintage"}, Description: "A perfect gift."},
		}
		_, debug := Rank(candidates, groups, 24)
		// 3 + 3 + 1 + 3*2
		if debug.Scores["l1"] != 13 {
			t.Errorf("score: got %v, want 13", debug.Scores["l1"])
		}
	})
}

func TestRank_OrderAndTies(t *testing.T) {
	groups := []term.Group{group("lamp")}
	candidates := []listing.Listing{
		{ID: "text-1", Title: "lamp"},
		{ID: "tag", Styles: listing.Tags{"lamp"}},
		{ID: "text-2", Description: "lamp"},
		{ID: "ai", AIGeneratedTitle: "lamp"},
		{ID: "text-3", StoryText: "lamp"},
	}

	got, _ := Rank(candidates, groups, 10)
	want := []string{"tag", "text-1", "text-2", "text-3", "ai"}
	if g := ids(got); !equal(g, want) {
		t.Errorf("order: got %v, want %v", g, want)
	}
}

func TestRank_Truncates(t *testing.T) {
	groups := []term.Group{group("lamp")}
	candidates := []listing.Listing{
		{ID: "a", Title: "lamp"},
		{ID: "b", Title: "lamp"},
		{ID: "c", Title: "lamp"},
	}

	got, debug := Rank(candidates, groups, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if debug.DirectMatches != 3 {
		t.Errorf("direct matches counted before truncation: got %d", debug.DirectMatches)
	}
	if debug.TermMatchCounts["lamp"] != 3 {
		t.Errorf("term count before truncation: got %d", debug.TermMatchCounts["lamp"])
	}
	if debug.TotalListingsScanned != 3 {
		t.Errorf("scanned: got %d", debug.TotalListingsScanned)
	}
}

func TestRank_DoesNotMutateCandidates(t *testing.T) {
	groups := []term.Group{group("lamp")}
	candidates := []listing.Listing{
		{ID: "a", Title: "lamp"},
		{ID: "b", Styles: listing.Tags{"lamp"}},
	}

	Rank(candidates, groups, 10)
	if candidates[0].ID != "a" || candidates[1].ID != "b" {
		t.Errorf("candidates reordered: %v", ids(candidates))
	}
}

func ids(ls []listing.Listing) []string {
	out := make([]string, len(ls))
	for i := range ls {
		out[i] = ls[i].ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
