package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/thriftfind/internal/config"
	"github.com/kailas-cloud/thriftfind/internal/domain/synonym"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
	logpkg "github.com/kailas-cloud/thriftfind/internal/logger"
	"github.com/kailas-cloud/thriftfind/internal/metrics"
	"github.com/kailas-cloud/thriftfind/internal/repository/termcache"
	"github.com/kailas-cloud/thriftfind/internal/storage"
	chiTransport "github.com/kailas-cloud/thriftfind/internal/transport/chi"
	anthropicExt "github.com/kailas-cloud/thriftfind/internal/transport/anthropic"
	openaiExt "github.com/kailas-cloud/thriftfind/internal/transport/openai"
	"github.com/kailas-cloud/thriftfind/internal/usecase/extraction"
	healthuc "github.com/kailas-cloud/thriftfind/internal/usecase/health"
	searchuc "github.com/kailas-cloud/thriftfind/internal/usecase/search"
	"github.com/kailas-cloud/thriftfind/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting thriftfind API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("llm_enabled", cfg.LLM.Enabled),
	)

	ctx := context.Background()

	store, err := storage.Open(ctx, &cfg)
	if err != nil {
		logger.Fatal("Failed to open listing storage", zap.Error(err))
	}
	defer store.Close()
	logger.Info("Connected to database")

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterSearchMetrics()

	synonyms := synonym.Default().Extend(cfg.Search.Synonyms)
	local := extraction.NewLocal(extraction.WithSynonyms(synonyms))

	// Pass nil interface (not typed nil pointer!) when the LLM is disabled.
	var remote searchuc.RemoteExtractor
	var extractorCheck healthuc.ExtractorChecker
	if cfg.LLM.Enabled {
		ext := newRemoteExtractor(&cfg.LLM, logger.Named("extractor"))
		remote = ext
		extractorCheck = ext
		if store.KV != nil && cfg.LLM.CacheTTLSec > 0 {
			cached := termcache.New(
				ext, store.KV, cfg.Storage.KeyPrefix,
				time.Duration(cfg.LLM.CacheTTLSec)*time.Second,
				metrics.ExtractionCacheTotal, logger.Named("termcache"),
			)
			remote = cached
			extractorCheck = cached
		}
		if cfg.LLM.APIKey == "" {
			logger.Warn("LLM enabled without an API key, every query will use local extraction")
		}
	}

	searchSvc := searchuc.New(
		store.Listings, remote, local, term.NewNormalizer(synonyms), logger.Named("search"),
	).WithTimeouts(
		time.Duration(cfg.Search.FetchTimeoutMs)*time.Millisecond,
		time.Duration(cfg.LLM.TimeoutMs)*time.Millisecond,
	)
	healthSvc := healthuc.New(store.Pinger, extractorCheck, store.Listings)

	server := chiTransport.NewServer(searchSvc, healthSvc, logger).WithDebug(cfg.HTTP.Debug)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}

// remoteExtractor is what both LLM providers offer.
type remoteExtractor interface {
	searchuc.RemoteExtractor
	healthuc.ExtractorChecker
}

func newRemoteExtractor(cfg *config.LLMConfig, logger *zap.Logger) remoteExtractor {
	if cfg.IsAnthropic() {
		return anthropicExt.NewExtractor(&anthropicExt.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			RateLimit:   cfg.RequestsPerSecond,
			Burst:       cfg.Burst,
			Logger:      logger,
		})
	}
	return openaiExt.NewExtractor(&openaiExt.Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Provider:    cfg.Provider,
		RateLimit:   cfg.RequestsPerSecond,
		Burst:       cfg.Burst,
		Logger:      logger,
	})
}
