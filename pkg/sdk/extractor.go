package thriftfind

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

// Extractor turns a free-text query into term groups, typically by asking a
// language model. Returning an error or no groups makes the client fall back
// to its built-in keyword extractor. Wrap ErrRateLimited or
// ErrMissingCredential to have the fallback reason recorded precisely.
type Extractor interface {
	Extract(ctx context.Context, query string) ([]TermGroup, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, query string) ([]TermGroup, error)

// Extract calls f.
func (f ExtractorFunc) Extract(ctx context.Context, query string) ([]TermGroup, error) {
	return f(ctx, query)
}

// extractorAdapter wraps a public Extractor to satisfy search.RemoteExtractor.
type extractorAdapter struct {
	inner Extractor
}

func (a *extractorAdapter) Extract(ctx context.Context, query string) ([]term.Group, error) {
	groups, err := a.inner.Extract(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return toDomainGroups(groups), nil
}
