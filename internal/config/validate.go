package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks Config for production-critical problems.
// It collects all errors into a single joined error.
func (c *Config) Validate() error {
	var errs []string

	if c.Groq.APIKey == "" {
		errs = append(errs, "GROQ_API_KEY is required")
	}

	// Affiliate links degrade to untagged URLs without a tag: warn only
	if c.Amazon.AffiliateTag == "" {
		slog.Warn("AMAZON_AFFILIATE_TAG is empty — outbound product links carry no attribution")
	}

	// Port ranges
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT must be 1–65535, got %d", c.Server.Port))
	}
	if c.Redis.Port < 1 || c.Redis.Port > 65535 {
		errs = append(errs, fmt.Sprintf("REDIS_PORT must be 1–65535, got %d", c.Redis.Port))
	}

	if c.Chat.HistoryTurns < 1 {
		errs = append(errs, fmt.Sprintf("CHAT_HISTORY_TURNS must be positive, got %d", c.Chat.HistoryTurns))
	}
	if c.Chat.RelevanceThreshold < 1 || c.Chat.RelevanceThreshold > 100 {
		errs = append(errs, fmt.Sprintf("CHAT_RELEVANCE_THRESHOLD must be 1–100, got %d", c.Chat.RelevanceThreshold))
	}
	if c.Chat.ListingCacheTTL <= 0 {
		errs = append(errs, "CHAT_LISTING_CACHE_TTL must be positive")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}
