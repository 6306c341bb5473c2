package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/thriftfind/internal/domain"
	"github.com/kailas-cloud/thriftfind/internal/domain/listing"
	"github.com/kailas-cloud/thriftfind/internal/domain/search/result"
	"github.com/kailas-cloud/thriftfind/internal/domain/search/source"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
	logpkg "github.com/kailas-cloud/thriftfind/internal/logger"
	"github.com/kailas-cloud/thriftfind/internal/metrics"
)

// Default collaborator timeouts.
const (
	DefaultFetchTimeout   = 3 * time.Second
	DefaultExtractTimeout = 5 * time.Second
)

// Service runs term-based listing search. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	candidates     CandidateRepository
	remote         RemoteExtractor
	local          LocalExtractor
	groups         GroupNormalizer
	fetchTimeout   time.Duration
	extractTimeout time.Duration
	logger         *zap.Logger
}

// New creates a search service. remote may be nil, in which case every query
// goes through the local extractor.
func New(
	candidates CandidateRepository,
	remote RemoteExtractor,
	local LocalExtractor,
	groups GroupNormalizer,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		candidates:     candidates,
		remote:         remote,
		local:          local,
		groups:         groups,
		fetchTimeout:   DefaultFetchTimeout,
		extractTimeout: DefaultExtractTimeout,
		logger:         logger,
	}
}

// WithTimeouts overrides the collaborator call timeouts. Zero keeps the default.
func (s *Service) WithTimeouts(fetch, extract time.Duration) *Service {
	if fetch > 0 {
		s.fetchTimeout = fetch
	}
	if extract > 0 {
		s.extractTimeout = extract
	}
	return s
}

// Search extracts term groups from a free-text query and ranks matching
// listings. An empty query returns an empty result without touching any
// collaborator. Extraction and storage failures degrade rather than error.
func (s *Service) Search(ctx context.Context, query string, limit int) (result.Result, error) {
	if strings.TrimSpace(query) == "" {
		return result.Empty(), nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	groups, src := s.extract(ctx, query)

	res := s.run(ctx, groups, limit)
	res.Interpretation = &result.Interpretation{
		OriginalQuery: query,
		TermGroups:    groups,
		Source:        src,
	}

	s.observe(ctx, "text", &res)
	return res, nil
}

// SearchByTerms ranks listings against term groups derived elsewhere (for
// example an image description pass). label is echoed as the original query.
func (s *Service) SearchByTerms(
	ctx context.Context, raw []term.Group, limit int, label string,
) (result.Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	groups := s.groups.Normalize(raw)

	res := s.run(ctx, groups, limit)
	res.Interpretation = &result.Interpretation{
		OriginalQuery: label,
		TermGroups:    groups,
		Source:        source.Vision,
	}

	s.observe(ctx, "terms", &res)
	return res, nil
}

// extract prefers the remote extractor and falls back to the local one on any
// failure, including a remote answer with no usable terms.
func (s *Service) extract(ctx context.Context, query string) ([]term.Group, source.Source) {
	if s.remote != nil {
		groups, err := s.extractRemote(ctx, query)
		if err == nil {
			return groups, source.OpenAI
		}
		reason := fallbackReason(err)
		metrics.ExtractionFallbacksTotal.WithLabelValues(reason).Inc()
		logpkg.FromContextOr(ctx, s.logger).Warn("Remote term extraction failed, using local extractor",
			zap.String("reason", reason),
			zap.Error(err),
		)
	}
	return s.groups.Normalize(s.local.Extract(query)), source.Local
}

var errNoTerms = fmt.Errorf("%w: no usable terms", domain.ErrExtraction)

func (s *Service) extractRemote(ctx context.Context, query string) ([]term.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, s.extractTimeout)
	defer cancel()

	raw, err := s.remote.Extract(ctx, query)
	if err != nil {
		return nil, err //nolint:wrapcheck // classified by fallbackReason
	}
	groups := s.groups.Normalize(raw)
	if len(groups) == 0 {
		return nil, errNoTerms
	}
	return groups, nil
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, errNoTerms):
		return "no_terms"
	case errors.Is(err, domain.ErrExtraction):
		return "extraction_error"
	default:
		return "error"
	}
}

// run fetches the candidate window and ranks it. No term groups means no scan.
func (s *Service) run(ctx context.Context, groups []term.Group, limit int) result.Result {
	if len(groups) == 0 {
		listings, debug := Rank(nil, groups, limit)
		return result.Result{Listings: listings, Debug: debug}
	}

	candidates := s.fetchCandidates(ctx, limit)
	listings, debug := Rank(candidates, groups, limit)
	return result.Result{Listings: listings, Debug: debug}
}

// fetchCandidates returns the newest active listings, or nothing on failure.
func (s *Service) fetchCandidates(ctx context.Context, limit int) []listing.Listing {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	window := CandidateWindow(limit)
	candidates, err := s.candidates.FetchActive(ctx, window)
	if err != nil {
		metrics.CandidateFetchErrorsTotal.Inc()
		logpkg.FromContextOr(ctx, s.logger).Warn("Candidate fetch failed, returning empty result",
			zap.Int("window", window),
			zap.Error(fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)),
		)
		return nil
	}

	// Storage is trusted for ordering but not for status.
	active := make([]listing.Listing, 0, len(candidates))
	for i := range candidates {
		if candidates[i].IsActive() {
			active = append(active, candidates[i])
		}
	}
	return active
}

func (s *Service) observe(ctx context.Context, entry string, res *result.Result) {
	src := ""
	terms := 0
	if res.Interpretation != nil {
		src = string(res.Interpretation.Source)
		terms = len(res.Interpretation.TermGroups)
	}
	metrics.SearchRequestsTotal.WithLabelValues(entry, src).Inc()
	metrics.SearchResults.WithLabelValues(entry).Observe(float64(len(res.Listings)))
	metrics.CandidatesScanned.Observe(float64(res.Debug.TotalListingsScanned))

	logpkg.FromContextOr(ctx, s.logger).Debug("Search completed",
		zap.String("entry", entry),
		zap.String("source", src),
		zap.Int("term_groups", terms),
		zap.Int("scanned", res.Debug.TotalListingsScanned),
		zap.Int("matched", res.Debug.DirectMatches),
		zap.Int("returned", len(res.Listings)),
	)
}
