package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/thriftfind/internal/domain"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

func TestNewText_Defaults(t *testing.T) {
	r, err := NewText("retro lamp", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Query() != "retro lamp" {
		t.Errorf("Query() = %q", r.Query())
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), DefaultLimit)
	}
	if r.Groups() != nil {
		t.Errorf("Groups() = %v, want nil", r.Groups())
	}
}

func TestNewText_EmptyQueryAllowed(t *testing.T) {
	if _, err := NewText("", 10); err != nil {
		t.Fatalf("empty query should be accepted: %v", err)
	}
}

func TestNewText_QueryTooLong(t *testing.T) {
	_, err := NewText(strings.Repeat("a", MaxQueryLength+1), 10)
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestNewText_LimitBounds(t *testing.T) {
	tests := []struct {
		limit   int
		want    int
		wantErr bool
	}{
		{-1, 0, true},
		{0, DefaultLimit, false},
		{1, 1, false},
		{MaxLimit, MaxLimit, false},
		{MaxLimit + 1, 0, true},
	}
	for _, tc := range tests {
		r, err := NewText("q", tc.limit)
		if tc.wantErr {
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("limit=%d: expected ErrInvalidQuery, got %v", tc.limit, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("limit=%d: unexpected error: %v", tc.limit, err)
			continue
		}
		if r.Limit() != tc.want {
			t.Errorf("limit=%d: Limit() = %d, want %d", tc.limit, r.Limit(), tc.want)
		}
	}
}

func TestNewTerms(t *testing.T) {
	groups := []term.Group{{Term: "lamp", Variants: []string{"lamp"}}}
	r, err := NewTerms(groups, 5, "photo-upload")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Groups()) != 1 || r.Limit() != 5 || r.Label() != "photo-upload" {
		t.Errorf("unexpected request: %+v", r)
	}
}

func TestNewTerms_TooManyGroups(t *testing.T) {
	groups := make([]term.Group, MaxTermGroups+1)
	if _, err := NewTerms(groups, 5, ""); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestNewTerms_LabelTooLong(t *testing.T) {
	if _, err := NewTerms(nil, 5, strings.Repeat("x", MaxLabelLength+1)); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}
