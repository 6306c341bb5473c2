package search

import (
	"context"

	"github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

// CandidateRepository reads the newest active listings from storage.
type CandidateRepository interface {
	FetchActive(ctx context.Context, limit int) ([]listing.Listing, error)
}

// RemoteExtractor turns a free-text query into raw term groups via an external
// service. Any error triggers the local fallback.
type RemoteExtractor interface {
	Extract(ctx context.Context, query string) ([]term.Group, error)
}

// LocalExtractor is the deterministic, infallible extractor.
type LocalExtractor interface {
	Extract(query string) []term.Group
}

// GroupNormalizer canonicalizes raw term groups.
type GroupNormalizer interface {
	Normalize(raw []term.Group) []term.Group
}
