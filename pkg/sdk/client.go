package thriftfind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/thriftfind/internal/config"
	"github.com/kailas-cloud/thriftfind/internal/db"
	"github.com/kailas-cloud/thriftfind/internal/domain/search/result"
	"github.com/kailas-cloud/thriftfind/internal/domain/synonym"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
	"github.com/kailas-cloud/thriftfind/internal/storage"
	anthropicExt "github.com/kailas-cloud/thriftfind/internal/transport/anthropic"
	openaiExt "github.com/kailas-cloud/thriftfind/internal/transport/openai"
	"github.com/kailas-cloud/thriftfind/internal/usecase/extraction"
	healthuc "github.com/kailas-cloud/thriftfind/internal/usecase/health"
	searchuc "github.com/kailas-cloud/thriftfind/internal/usecase/search"
)

const (
	defaultReadinessTimeoutSec = 10
	defaultKeyPrefix           = "thriftfind:"
)

// Internal interfaces swapped out in tests.
type searchUseCase interface {
	Search(ctx context.Context, query string, limit int) (result.Result, error)
	SearchByTerms(ctx context.Context, raw []term.Group, limit int, label string) (result.Result, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the thriftfind SDK entry point.
type Client struct {
	listings  storage.Repository
	pinger    db.Pinger
	closer    func()
	searchSvc searchUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client and connects to the configured storage.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	s, err := storage.Open(ctx, cfg.storageConfig())
	if err != nil {
		return nil, fmt.Errorf("thriftfind: %w", err)
	}

	return wireClient(s, cfg, obs), nil
}

func (c *clientConfig) validate() error {
	switch c.driver {
	case "":
		return errors.New("thriftfind: storage required (use WithValkey, WithRedis or WithSQLite)")
	case config.DriverValkey, config.DriverRedis:
		if len(c.addrs) == 0 || c.addrs[0] == "" {
			return fmt.Errorf("thriftfind: %s address required", c.driver)
		}
	case config.DriverSQLite:
		if c.path == "" {
			return errors.New("thriftfind: sqlite path required")
		}
	default:
		return fmt.Errorf("thriftfind: unknown driver %q", c.driver)
	}
	return nil
}

func (c *clientConfig) storageConfig() *config.Config {
	var cfg config.Config
	cfg.Database.Driver = c.driver
	cfg.Database.Addrs = c.addrs
	cfg.Database.Password = c.password
	cfg.Database.Path = c.path
	cfg.Database.ReadinessTimeout = defaultReadinessTimeoutSec
	cfg.Storage.KeyPrefix = c.keyPrefix
	return &cfg
}

func wireClient(s *storage.Storage, cfg *clientConfig, obs *observer) *Client {
	synonyms := synonym.Default().Extend(cfg.synonyms)

	// Pass nil interfaces (not typed nil pointers) when extraction is local only.
	var remote searchuc.RemoteExtractor
	var checker healthuc.ExtractorChecker
	switch {
	case cfg.extractor != nil:
		remote = &extractorAdapter{inner: cfg.extractor}
	case cfg.useOpenAI:
		ext := openaiExt.NewExtractor(&openaiExt.Config{
			APIKey:    cfg.openAIKey,
			BaseURL:   cfg.openAIURL,
			Model:     cfg.openAIModel,
			RateLimit: cfg.openAIRate,
			Burst:     cfg.openAIBurst,
		})
		remote = ext
		checker = ext
	case cfg.useAnthropic:
		ext := anthropicExt.NewExtractor(&anthropicExt.Config{
			APIKey:    cfg.anthropicKey,
			Model:     cfg.anthropicMdl,
			RateLimit: cfg.openAIRate,
			Burst:     cfg.openAIBurst,
		})
		remote = ext
		checker = ext
	}

	svc := searchuc.New(
		s.Listings,
		remote,
		extraction.NewLocal(extraction.WithSynonyms(synonyms)),
		term.NewNormalizer(synonyms),
		nil,
	)
	if cfg.fetchTimeout > 0 || cfg.extractLimit > 0 {
		svc = svc.WithTimeouts(
			durationOr(cfg.fetchTimeout, searchuc.DefaultFetchTimeout),
			durationOr(cfg.extractLimit, searchuc.DefaultExtractTimeout),
		)
	}

	return &Client{
		listings:  s.Listings,
		pinger:    s.Pinger,
		closer:    s.Close,
		searchSvc: svc,
		healthSvc: healthuc.New(s.Pinger, checker, s.Listings),
		obs:       obs,
	}
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

// Close releases all resources.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.pinger.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Listings returns the listing management service.
func (c *Client) Listings() *ListingService {
	return &ListingService{repo: c.listings, obs: c.obs}
}
