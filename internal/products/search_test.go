package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Musasteel/ai-pc-assistant/internal/config"
)

func searchServer(t *testing.T, body string, status int) *SearchClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Electronics", r.URL.Query().Get("category"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewSearchClient(config.AmazonConfig{SearchURL: srv.URL, APIKey: "secret"})
}

func TestSearch_ReturnsFirstItem(t *testing.T) {
	client := searchServer(t, `{"items":[{"title":"MSI RTX 4070","link":"https://www.amazon.com/dp/B0BZB7SQ38","price":"$549.99"}]}`, http.StatusOK)

	got, err := client.Search(context.Background(), "RTX 4070")
	require.NoError(t, err)
	assert.Equal(t, "MSI RTX 4070", got.Name)
	assert.Equal(t, "https://www.amazon.com/dp/B0BZB7SQ38", got.URL)
	assert.Equal(t, "$549.99", got.Price)
}

func TestSearch_MissingPriceUsesSentinel(t *testing.T) {
	client := searchServer(t, `{"items":[{"title":"Thing","link":"https://www.amazon.com/dp/B000000000"}]}`, http.StatusOK)

	got, err := client.Search(context.Background(), "thing")
	require.NoError(t, err)
	assert.Equal(t, PriceFallback, got.Price)
}

func TestSearch_ZeroItemsIsError(t *testing.T) {
	client := searchServer(t, `{"items":[]}`, http.StatusOK)

	_, err := client.Search(context.Background(), "nothing")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestSearch_ServerErrorIsError(t *testing.T) {
	client := searchServer(t, `oops`, http.StatusBadGateway)

	_, err := client.Search(context.Background(), "anything")
	assert.Error(t, err)
}
