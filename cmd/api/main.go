package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Musasteel/ai-pc-assistant/internal/api"
	"github.com/Musasteel/ai-pc-assistant/internal/assistant"
	"github.com/Musasteel/ai-pc-assistant/internal/config"
	"github.com/Musasteel/ai-pc-assistant/internal/conversation"
	"github.com/Musasteel/ai-pc-assistant/internal/llm"
	"github.com/Musasteel/ai-pc-assistant/internal/middleware"
	"github.com/Musasteel/ai-pc-assistant/internal/products"
	iredis "github.com/Musasteel/ai-pc-assistant/internal/redis"
	"github.com/Musasteel/ai-pc-assistant/internal/relevance"
	"github.com/Musasteel/ai-pc-assistant/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("validating config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Redis backs conversation history, the listing cache, and rate limiting
	redisClient, err := iredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		slog.Error("connecting to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Pipeline
	classifier := relevance.New(cfg.Chat.RelevanceThreshold)
	store := conversation.NewRedisStore(redisClient, cfg.Chat.SessionTTL)
	completions := llm.NewClient(cfg.Groq)

	listingCache := products.NewRedisCache(redisClient, cfg.Chat.ListingCacheTTL)
	searchClient := products.NewSearchClient(cfg.Amazon)
	resolver := products.NewResolver(listingCache, searchClient, cfg.Amazon.Marketplace, cfg.Amazon.AffiliateTag)

	svc := assistant.NewService(classifier, store, completions, assistant.NewAssembler(resolver), cfg.Chat.HistoryTurns)
	handler := assistant.NewHandler(svc)

	// Router
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSec)
	router := api.NewRouter(redisClient, api.RouterConfig{
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		SessionTTL:         cfg.Chat.SessionTTL,
		AskRateLimiter:     rateLimiter.Middleware,
	}, api.HandlerSet{
		Ask: handler.Ask,
	})

	// Start server
	srv := server.New(cfg.Server, router)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{}
	switch cfg.Level {
	case "debug":
		opts.Level = slog.LevelDebug
	case "info":
		opts.Level = slog.LevelInfo
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
