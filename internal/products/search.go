package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Musasteel/ai-pc-assistant/internal/config"
)

// ErrNoResults means the search succeeded but matched nothing.
var ErrNoResults = errors.New("product search returned no items")

// Searcher finds at most one listing for a keyword query.
type Searcher interface {
	Search(ctx context.Context, keywords string) (Listing, error)
}

// SearchClient queries the commerce search API for a single Electronics
// item. All failures are recoverable — the resolver falls back to a plain
// search URL — so errors here never reach the user.
type SearchClient struct {
	httpClient *http.Client
	searchURL  string
	apiKey     string
}

func NewSearchClient(cfg config.AmazonConfig) *SearchClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SearchClient{
		httpClient: &http.Client{Timeout: timeout},
		searchURL:  cfg.SearchURL,
		apiKey:     cfg.APIKey,
	}
}

type searchResponse struct {
	Items []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
		Price string `json:"price"`
	} `json:"items"`
}

func (c *SearchClient) Search(ctx context.Context, keywords string) (Listing, error) {
	q := url.Values{}
	q.Set("k", keywords)
	q.Set("category", "Electronics")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+q.Encode(), nil)
	if err != nil {
		return Listing{}, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Listing{}, fmt.Errorf("product search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Listing{}, fmt.Errorf("product search: status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Listing{}, fmt.Errorf("product search: decoding response: %w", err)
	}
	if len(parsed.Items) == 0 {
		return Listing{}, ErrNoResults
	}

	item := parsed.Items[0]
	price := item.Price
	if price == "" {
		price = PriceFallback
	}
	return Listing{Name: item.Title, URL: item.Link, Price: price}, nil
}
