package thriftfind

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver    string // "valkey", "redis" or "sqlite"
	addrs     []string
	password  string
	path      string
	keyPrefix string

	extractor    Extractor
	openAIKey    string
	openAIModel  string
	openAIURL    string
	openAIRate   float64
	openAIBurst  int
	useOpenAI    bool
	anthropicKey string
	anthropicMdl string
	useAnthropic bool
	synonyms     map[string]string
	fetchTimeout time.Duration
	extractLimit time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey configures the client to connect to a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithSQLite stores listings in a local SQLite file. Use ":memory:" for a
// throwaway database.
func WithSQLite(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "sqlite"
		c.path = path
	})
}

// WithKeyPrefix namespaces Valkey/Redis keys. Default: "thriftfind:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithOpenAI enables LLM term extraction through the OpenAI chat API.
// An empty model selects the default. Queries fall back to local extraction
// whenever the API fails.
func WithOpenAI(apiKey, model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.useOpenAI = true
		c.openAIKey = apiKey
		c.openAIModel = model
	})
}

// WithAnthropic enables LLM term extraction through the Anthropic Messages
// API. An empty model selects the default. WithRateLimit applies here too.
func WithAnthropic(apiKey, model string) Option {
	return optionFunc(func(c *clientConfig) {
		c.useAnthropic = true
		c.anthropicKey = apiKey
		c.anthropicMdl = model
	})
}

// WithOpenAIBaseURL points the OpenAI extractor at a compatible endpoint.
func WithOpenAIBaseURL(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.openAIURL = url
	})
}

// WithRateLimit caps LLM extraction calls per second. Queries over the limit
// use local extraction.
func WithRateLimit(perSecond float64, burst int) Option {
	return optionFunc(func(c *clientConfig) {
		c.openAIRate = perSecond
		c.openAIBurst = burst
	})
}

// WithExtractor sets a custom remote term extractor. It takes precedence
// over WithOpenAI and WithAnthropic.
func WithExtractor(e Extractor) Option {
	return optionFunc(func(c *clientConfig) {
		c.extractor = e
	})
}

// WithSynonyms adds word → canonical mappings on top of the built-in table.
func WithSynonyms(synonyms map[string]string) Option {
	return optionFunc(func(c *clientConfig) {
		c.synonyms = synonyms
	})
}

// WithTimeouts overrides the candidate fetch and remote extraction timeouts.
// Zero keeps the default.
func WithTimeouts(fetch, extract time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.fetchTimeout = fetch
		c.extractLimit = extract
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
