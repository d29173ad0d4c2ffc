package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freezer-inventory/config"
	_ "freezer-inventory/docs" // Swagger docs
	"freezer-inventory/internal/httpserver"
	"freezer-inventory/internal/item/usecase"
	"freezer-inventory/internal/knowledge"
	"freezer-inventory/internal/middleware"
	"freezer-inventory/pkg/datemath"
	"freezer-inventory/pkg/llmprovider"
	"freezer-inventory/pkg/log"
)

// @title       Freezer Inventory API
// @description Parses free-text freezer item descriptions into structured inventory records.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Freezer Inventory API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Dates
	dates, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.Parser.Timezone, err)
	}

	// 4. Knowledge base
	store, err := knowledge.NewStore(logger, cfg.Parser.KnowledgeBasePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load knowledge base: %v", err)
	}
	if cfg.Parser.KnowledgeBasePath == "" {
		logger.Info(ctx, "Using built-in knowledge base")
	} else if cfg.Parser.WatchKnowledgeBase {
		if err := knowledge.NewWatcher(logger, store).Watch(ctx); err != nil {
			logger.Warnf(ctx, "Knowledge base hot reload disabled: %v", err)
		}
	}

	// 5. LLM (optional)
	llm := newGenerator(ctx, logger, cfg.LLM)

	// 6. Item domain
	candidateTimeout, _ := time.ParseDuration(cfg.LLM.CandidateTimeout)
	itemUC := usecase.New(logger, store, llm, dates, usecase.Config{
		DefaultExpirationDays: cfg.Parser.DefaultExpirationDays,
		CandidateTimeout:      candidateTimeout,
		CacheSize:             cfg.Cache.Size,
		CacheTTL:              cfg.Cache.TTL,
		MaxBatchItems:         cfg.Batch.MaxItems,
		BatchConcurrency:      cfg.Batch.Concurrency,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		ReadyCheck: func(context.Context) error {
			if store.KnowledgeBase() == nil {
				return fmt.Errorf("knowledge base not loaded")
			}
			return nil
		},
		ItemUseCase: itemUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newGenerator builds the LLM manager, or returns nil when AI candidates are
// disabled or no provider could be created.
func newGenerator(ctx context.Context, logger log.Logger, cfg config.LLMConfig) usecase.Generator {
	if !cfg.AIEnabled() {
		logger.Info(ctx, "AI candidates disabled: no LLM provider configured")
		return nil
	}

	providers, initErrs, err := llmprovider.InitializeProviders(&cfg)
	for _, e := range initErrs {
		logger.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	if err != nil {
		logger.Warnf(ctx, "AI candidates disabled: %v", err)
		return nil
	}

	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)

	for _, p := range manager.Providers() {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	return manager
}
