// Package termcache caches remote term extraction results in a key-value store.
package termcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/thriftfind/internal/db"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
	"github.com/kailas-cloud/thriftfind/internal/domain/text"
)

// DefaultTTL bounds how long a cached interpretation is reused.
const DefaultTTL = 24 * time.Hour

// store is the consumer interface for the term cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Extractor is the remote extractor being cached.
type Extractor interface {
	Extract(ctx context.Context, query string) ([]term.Group, error)
}

// CachedExtractor serves repeated queries from the cache instead of calling
// the remote extractor. Errors and empty answers are never cached.
type CachedExtractor struct {
	inner      Extractor
	store      store
	prefix     string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner Extractor,
	s store,
	prefix string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedExtractor {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedExtractor{
		inner:      inner,
		store:      s,
		prefix:     prefix + "term_cache:",
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Extract returns cached term groups or calls the inner extractor.
// Queries that differ only in case, punctuation or spacing share an entry.
func (c *CachedExtractor) Extract(ctx context.Context, query string) ([]term.Group, error) {
	key := c.cacheKey(query)

	if groups, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return groups, nil
	}

	c.incCache("miss")

	groups, err := c.inner.Extract(ctx, query)
	if err != nil {
		return nil, err //nolint:wrapcheck // sentinel errors drive fallback classification
	}

	if len(groups) > 0 {
		c.putToCache(ctx, key, groups)
	}
	return groups, nil
}

// HealthCheck delegates to the inner extractor when it supports checks.
func (c *CachedExtractor) HealthCheck(ctx context.Context) error {
	hc, ok := c.inner.(interface{ HealthCheck(context.Context) error })
	if !ok {
		return nil
	}
	if err := hc.HealthCheck(ctx); err != nil {
		return fmt.Errorf("extractor health: %w", err)
	}
	return nil
}

func (c *CachedExtractor) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedExtractor) cacheKey(query string) string {
	h := sha256.Sum256([]byte(text.Normalize(query)))
	return c.prefix + hex.EncodeToString(h[:])
}

func (c *CachedExtractor) getFromCache(ctx context.Context, key string) ([]term.Group, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached terms", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	var groups []term.Group
	if err := json.Unmarshal(data, &groups); err != nil || len(groups) == 0 {
		c.logger.Warn("Failed to parse cached terms", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return groups, true
}

func (c *CachedExtractor) putToCache(ctx context.Context, key string, groups []term.Group) {
	data, err := json.Marshal(groups)
	if err != nil {
		c.logger.Warn("Failed to encode terms for cache", zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache terms", zap.String("key", key), zap.Error(err))
	}
}
