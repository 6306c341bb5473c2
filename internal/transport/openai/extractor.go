// Package openai extracts search terms from free-text queries through an
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kailas-cloud/thriftfind/internal/domain"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
	"github.com/kailas-cloud/thriftfind/internal/metrics"
	"github.com/kailas-cloud/thriftfind/internal/usecase/extraction"
)

// Request defaults.
const (
	DefaultModel       = openai.GPT4oMini
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 300
	DefaultProvider    = "openai"
)

// ChatClient is the subset of the go-openai client used here.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Extractor asks an LLM for term groups.
type Extractor struct {
	client      ChatClient
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
	provider    string
	limiter     *rate.Limiter
	logger      *zap.Logger
}

// Config holds the extraction provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Provider    string
	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit float64
	Burst     int
	Logger    *zap.Logger
}

// NewExtractor creates an OpenAI-compatible term extractor. An empty API key is
// accepted; every Extract call then fails with domain.ErrMissingCredential.
func NewExtractor(cfg *Config) *Extractor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return NewExtractorWithClient(openai.NewClientWithConfig(clientCfg), cfg)
}

// NewExtractorWithClient creates an extractor around an existing client.
func NewExtractorWithClient(client ChatClient, cfg *Config) *Extractor {
	e := &Extractor{
		client:      client,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		provider:    cfg.Provider,
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
	if e.provider == "" {
		e.provider = DefaultProvider
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if cfg.RateLimit > 0 {
		burst := max(cfg.Burst, 1)
		e.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return e
}

// Extract implements search.RemoteExtractor. Term groups are returned as the
// model produced them; canonicalization happens downstream.
func (e *Extractor) Extract(ctx context.Context, query string) ([]term.Group, error) {
	if e.apiKey == "" {
		e.fail("missing_credential")
		return nil, fmt.Errorf("extraction API key not set: %w", domain.ErrMissingCredential)
	}
	if e.limiter != nil && !e.limiter.Allow() {
		e.fail("rate_limited")
		return nil, fmt.Errorf("extraction request budget exhausted: %w", domain.ErrRateLimited)
	}

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: extraction.UserPrompt(query)},
		},
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	}

	start := time.Now()

	resp, err := e.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			e.fail("timeout")
			return nil, fmt.Errorf("extraction request: %w", ctx.Err())
		}
		e.fail("api_error")
		return nil, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		e.fail("empty_response")
		return nil, fmt.Errorf("no choices in extraction response: %w", domain.ErrExtraction)
	}

	groups, err := extraction.ParseTerms(resp.Choices[0].Message.Content)
	if err != nil {
		e.fail("invalid_json")
		e.logger.Debug("Unparseable extraction response",
			zap.String("content", resp.Choices[0].Message.Content),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.ExtractionRequestsTotal.WithLabelValues(e.provider, e.model, "success").Inc()
	metrics.ExtractionRequestDuration.WithLabelValues(e.provider, e.model).Observe(duration.Seconds())

	return groups, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (e *Extractor) HealthCheck(ctx context.Context) error {
	if e.apiKey == "" {
		return fmt.Errorf("extraction API key not set: %w", domain.ErrMissingCredential)
	}
	if _, err := e.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

func (e *Extractor) fail(errorType string) {
	metrics.ExtractionRequestsTotal.WithLabelValues(e.provider, e.model, "error").Inc()
	metrics.ExtractionErrorsTotal.WithLabelValues(e.provider, e.model, errorType).Inc()
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrExtraction so callers fall back.
func parseAPIError(err error) error {
	wrap := domain.ErrExtraction

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("extraction API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("extraction API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("extraction API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("extraction request failed: %v: %w", err, wrap)
}

// extractDetail extracts the "detail" field from a JSON error body (Nebius error format).
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
