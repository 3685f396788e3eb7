package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Redis:  RedisConfig{Host: "localhost", Port: 6379},
		Groq: GroqConfig{
			APIKey:  "gsk_test",
			BaseURL: "https://api.groq.com/openai",
			Model:   "llama-3.3-70b-versatile",
			Timeout: 60 * time.Second,
		},
		Amazon: AmazonConfig{
			Marketplace:  "www.amazon.com",
			AffiliateTag: "assistant-20",
			Timeout:      10 * time.Second,
		},
		Chat: ChatConfig{
			HistoryTurns:       5,
			SessionTTL:         24 * time.Hour,
			ListingCacheTTL:    time.Hour,
			RelevanceThreshold: 70,
		},
		RateLimit: RateLimitConfig{MaxRequests: 30, WindowSec: 60},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_GroqAPIKeyRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Groq.APIKey = ""
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "GROQ_API_KEY") {
		t.Fatalf("expected GROQ_API_KEY error, got: %v", err)
	}
}

func TestValidate_InvalidPorts(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Redis.Port = 99999
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected port validation errors")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected SERVER_PORT error in: %v", err)
	}
	if !strings.Contains(err.Error(), "REDIS_PORT") {
		t.Errorf("expected REDIS_PORT error in: %v", err)
	}
}

func TestValidate_RelevanceThresholdRange(t *testing.T) {
	cfg := validConfig()
	cfg.Chat.RelevanceThreshold = 150
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "CHAT_RELEVANCE_THRESHOLD") {
		t.Fatalf("expected CHAT_RELEVANCE_THRESHOLD error, got: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 0},
		Redis:  RedisConfig{Port: 6379},
		Chat:   ChatConfig{HistoryTurns: 5, RelevanceThreshold: 70, ListingCacheTTL: time.Hour},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected multiple validation errors")
	}
	errStr := err.Error()
	for _, substr := range []string{"GROQ_API_KEY", "SERVER_PORT"} {
		if !strings.Contains(errStr, substr) {
			t.Errorf("expected %q in error: %s", substr, errStr)
		}
	}
}
