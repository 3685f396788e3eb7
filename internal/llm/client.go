// Package llm calls Groq's OpenAI-compatible chat completions API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Musasteel/ai-pc-assistant/internal/config"
	"github.com/Musasteel/ai-pc-assistant/internal/metrics"
)

var (
	// ErrUpstream marks completion failures the caller surfaces as a 500:
	// unreachable service, non-2xx status, or an unreadable body.
	ErrUpstream = errors.New("completion service error")
	// ErrEmptyResponse means the service answered but returned no usable
	// choice content.
	ErrEmptyResponse = errors.New("completion returned no content")
)

// Message is one entry of the chat transcript sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is a non-streaming chat completions client with fixed sampling
// parameters. One attempt per call, no retry — a failed exchange must not
// linger past the request that triggered it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(cfg config.GroqConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	TopP        float64   `json:"top_p"`
	Stream      bool      `json:"stream"`
	Stop        *string   `json:"stop"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Complete sends one system message, the prior turns, and the new question,
// and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, system string, history []Message, question string) (string, error) {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: system})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: question})

	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   2048,
		TopP:        1,
		Stream:      false,
		Stop:        nil,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.CompletionRequestsTotal.WithLabelValues("upstream_error").Inc()
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	metrics.CompletionDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		metrics.CompletionRequestsTotal.WithLabelValues("upstream_error").Inc()
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, detail)
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.CompletionRequestsTotal.WithLabelValues("upstream_error").Inc()
		return "", fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		metrics.CompletionRequestsTotal.WithLabelValues("empty").Inc()
		return "", ErrEmptyResponse
	}

	metrics.CompletionRequestsTotal.WithLabelValues("ok").Inc()
	return parsed.Choices[0].Message.Content, nil
}
