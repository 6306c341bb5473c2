// Package anthropic extracts search terms from free-text queries through the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kailas-cloud/thriftfind/internal/domain"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
	"github.com/kailas-cloud/thriftfind/internal/metrics"
	"github.com/kailas-cloud/thriftfind/internal/usecase/extraction"
)

// Request defaults.
const (
	DefaultModel       = "claude-3-5-haiku-20241022"
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 300
	Provider           = "anthropic"
)

// MessageClient is the subset of the Anthropic client used here.
type MessageClient interface {
	CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
	ListModels(ctx context.Context) error
}

// clientWrapper adapts the SDK client to MessageClient.
type clientWrapper struct {
	client anthropic.Client
}

func (w *clientWrapper) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return w.client.Messages.New(ctx, params)
}

func (w *clientWrapper) ListModels(ctx context.Context) error {
	_, err := w.client.Models.List(ctx, anthropic.ModelListParams{})
	return err //nolint:wrapcheck // wrapped by HealthCheck
}

// Config holds the extraction provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit float64
	Burst     int
	Logger    *zap.Logger
}

// Extractor asks a Claude model for term groups.
type Extractor struct {
	client      MessageClient
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
	limiter     *rate.Limiter
	logger      *zap.Logger
}

// NewExtractor creates an Anthropic term extractor. An empty API key is
// accepted; every Extract call then fails with domain.ErrMissingCredential.
func NewExtractor(cfg *Config) *Extractor {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return NewExtractorWithClient(&clientWrapper{client: anthropic.NewClient(opts...)}, cfg)
}

// NewExtractorWithClient creates an extractor around an existing client.
func NewExtractorWithClient(client MessageClient, cfg *Config) *Extractor {
	e := &Extractor{
		client:      client,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      cfg.Logger,
	}
	if e.model == "" {
		e.model = DefaultModel
	}
	if e.temperature == 0 {
		e.temperature = DefaultTemperature
	}
	if e.maxTokens == 0 {
		e.maxTokens = DefaultMaxTokens
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if cfg.RateLimit > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1))
	}
	return e
}

// Extract implements search.RemoteExtractor.
func (e *Extractor) Extract(ctx context.Context, query string) ([]term.Group, error) {
	if e.apiKey == "" {
		e.fail("missing_credential")
		return nil, fmt.Errorf("extraction API key not set: %w", domain.ErrMissingCredential)
	}
	if e.limiter != nil && !e.limiter.Allow() {
		e.fail("rate_limited")
		return nil, fmt.Errorf("extraction request budget exhausted: %w", domain.ErrRateLimited)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(e.model),
		MaxTokens:   int64(e.maxTokens),
		Temperature: anthropic.Float(float64(e.temperature)),
		System:      []anthropic.TextBlockParam{{Text: extraction.SystemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(query)),
		},
	}

	start := time.Now()
	msg, err := e.client.CreateMessage(ctx, params)
	duration := time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			e.fail("timeout")
			return nil, fmt.Errorf("extraction request: %w", ctx.Err())
		}
		e.fail("api_error")
		return nil, parseAPIError(err)
	}

	content := messageText(msg)
	if content == "" {
		e.fail("empty_response")
		return nil, fmt.Errorf("no text in extraction response: %w", domain.ErrExtraction)
	}

	groups, err := extraction.ParseTerms(content)
	if err != nil {
		e.fail("invalid_json")
		e.logger.Debug("Unparseable extraction response", zap.String("content", content), zap.Error(err))
		return nil, err //nolint:wrapcheck // already wraps domain.ErrExtraction
	}

	metrics.ExtractionRequestsTotal.WithLabelValues(Provider, e.model, "success").Inc()
	metrics.ExtractionRequestDuration.WithLabelValues(Provider, e.model).Observe(duration.Seconds())

	return groups, nil
}

// HealthCheck verifies API availability via the model listing endpoint.
func (e *Extractor) HealthCheck(ctx context.Context) error {
	if e.apiKey == "" {
		return fmt.Errorf("extraction API key not set: %w", domain.ErrMissingCredential)
	}
	if err := e.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

func (e *Extractor) fail(errorType string) {
	metrics.ExtractionRequestsTotal.WithLabelValues(Provider, e.model, "error").Inc()
	metrics.ExtractionErrorsTotal.WithLabelValues(Provider, e.model, errorType).Inc()
}

// messageText concatenates the text blocks of a response. Type is checked
// directly so hand-built messages in tests behave like decoded ones.
func messageText(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// parseAPIError wraps every failure with domain.ErrExtraction so callers fall back.
func parseAPIError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("extraction API error %d: %v: %w", apiErr.StatusCode, err, domain.ErrExtraction)
	}
	return fmt.Errorf("extraction request failed: %v: %w", err, domain.ErrExtraction)
}
