package request

import (
	"fmt"

	"github.com/kailas-cloud/thriftfind/internal/domain"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed free-text query length.
	MaxQueryLength = 2048
	// MaxTermGroups bounds pre-extracted term groups per request.
	MaxTermGroups = 32
	DefaultLimit  = 24
	MaxLimit      = 100
	// MaxLabelLength bounds the caller-supplied source label.
	MaxLabelLength = 256
)

// Request is a validated search request for either entry point.
type Request struct {
	query  string
	groups []term.Group
	limit  int
	label  string
}

// NewText validates a free-text search. An empty query is allowed and yields an
// empty result downstream. limit=0 selects DefaultLimit.
func NewText(query string, limit int) (Request, error) {
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	l, err := validateLimit(limit)
	if err != nil {
		return Request{}, err
	}
	return Request{query: query, limit: l}, nil
}

// NewTerms validates a pre-extracted term search.
func NewTerms(groups []term.Group, limit int, label string) (Request, error) {
	if len(groups) > MaxTermGroups {
		return Request{}, fmt.Errorf("%w: too many term groups (max %d)", domain.ErrInvalidQuery, MaxTermGroups)
	}
	if len(label) > MaxLabelLength {
		return Request{}, fmt.Errorf("%w: label too long (max %d chars)", domain.ErrInvalidQuery, MaxLabelLength)
	}
	l, err := validateLimit(limit)
	if err != nil {
		return Request{}, err
	}
	return Request{groups: groups, limit: l, label: label}, nil
}

func validateLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("%w: limit must be positive, got %d", domain.ErrInvalidQuery, limit)
	case limit == 0:
		return DefaultLimit, nil
	case limit > MaxLimit:
		return 0, fmt.Errorf("%w: limit must be at most %d, got %d", domain.ErrInvalidQuery, MaxLimit, limit)
	}
	return limit, nil
}

// Query returns the free-text query.
func (r *Request) Query() string { return r.query }

// Groups returns the pre-extracted term groups.
func (r *Request) Groups() []term.Group { return r.groups }

// Limit returns the maximum number of listings to return.
func (r *Request) Limit() int { return r.limit }

// Label returns the caller-supplied label describing where the terms came from.
func (r *Request) Label() string { return r.label }
