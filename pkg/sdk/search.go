package thriftfind

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/thriftfind/internal/domain/search/request"
)

// Search ranks active listings against a free-text query. limit=0 selects
// the default page size of 24; limits above 100 are rejected with
// ErrInvalidQuery. A blank query returns an empty result.
func (c *Client) Search(ctx context.Context, query string, limit int) (_ *SearchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search.text", start, err) }()

	req, err := request.NewText(query, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	res, err := c.searchSvc.Search(ctx, req.Query(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	out := fromDomainResult(&res)
	c.obs.observeSearch("text", out)
	return out, nil
}

// SearchByTerms ranks active listings against term groups produced
// elsewhere. Groups are canonicalized and deduplicated first; label is
// reported back as the interpretation's original query.
func (c *Client) SearchByTerms(
	ctx context.Context, groups []TermGroup, limit int, label string,
) (_ *SearchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search.terms", start, err) }()

	req, err := request.NewTerms(toDomainGroups(groups), limit, label)
	if err != nil {
		return nil, fmt.Errorf("search by terms: %w", err)
	}

	res, err := c.searchSvc.SearchByTerms(ctx, req.Groups(), req.Limit(), req.Label())
	if err != nil {
		return nil, fmt.Errorf("search by terms: %w", err)
	}
	out := fromDomainResult(&res)
	c.obs.observeSearch("terms", out)
	return out, nil
}
