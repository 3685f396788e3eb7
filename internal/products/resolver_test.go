package products

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	calls   int
	listing Listing
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, keywords string) (Listing, error) {
	f.calls++
	if f.err != nil {
		return Listing{}, f.err
	}
	return f.listing, nil
}

func newTestResolver(search Searcher) (*Resolver, *MemoryCache) {
	cache := NewMemoryCache(time.Hour)
	return NewResolver(cache, search, "www.amazon.com", "assistant-20"), cache
}

func TestResolve_CanonicalizesAndCaches(t *testing.T) {
	search := &fakeSearcher{listing: Listing{
		Name:  "MSI GeForce RTX 4070 Ventus",
		URL:   "https://www.amazon.com/MSI-Ventus/dp/B0BZB7SQ38?ref=sr_1_1",
		Price: "$549.99",
	}}
	resolver, _ := newTestResolver(search)
	ctx := context.Background()

	got := resolver.Resolve(ctx, "RTX 4070")

	assert.Equal(t, "RTX 4070", got.Name)
	assert.Equal(t, "https://www.amazon.com/dp/B0BZB7SQ38?tag=assistant-20", got.URL)
	assert.Equal(t, "$549.99", got.Price)
	assert.Equal(t, 1, search.calls)
}

func TestResolve_SecondCallWithinWindowHitsCache(t *testing.T) {
	search := &fakeSearcher{listing: testListing}
	resolver, _ := newTestResolver(search)
	ctx := context.Background()

	first := resolver.Resolve(ctx, "RTX 4070")
	second := resolver.Resolve(ctx, "RTX 4070")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, search.calls, "second resolve within the window must not call upstream")
}

func TestResolve_ExpiredEntryRefetched(t *testing.T) {
	search := &fakeSearcher{listing: testListing}
	cache := NewMemoryCache(time.Hour)
	now := time.Now()
	cache.now = func() time.Time { return now }
	resolver := NewResolver(cache, search, "www.amazon.com", "assistant-20")
	ctx := context.Background()

	resolver.Resolve(ctx, "RTX 4070")
	now = now.Add(time.Hour + time.Minute)
	resolver.Resolve(ctx, "RTX 4070")

	assert.Equal(t, 2, search.calls, "expired entry must trigger a second upstream call")
}

func TestResolve_SearchFailureFallsBack(t *testing.T) {
	search := &fakeSearcher{err: errors.New("connection reset")}
	resolver, cache := newTestResolver(search)
	ctx := context.Background()

	got := resolver.Resolve(ctx, "RTX 4090")

	assert.Equal(t, "RTX 4090", got.Name)
	assert.Equal(t, "https://www.amazon.com/s?k=RTX+4090&tag=assistant-20", got.URL)
	assert.Equal(t, PriceFallback, got.Price)

	// The fallback listing is cached like any other
	cached, ok, err := cache.Get(ctx, "RTX 4090")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, got, cached)
	assert.Equal(t, 1, search.calls)
}

func TestResolve_ZeroResultsFallsBack(t *testing.T) {
	search := &fakeSearcher{err: ErrNoResults}
	resolver, _ := newTestResolver(search)

	got := resolver.Resolve(context.Background(), "Obscure Widget")
	assert.Equal(t, "https://www.amazon.com/s?k=Obscure+Widget&tag=assistant-20", got.URL)
	assert.Equal(t, PriceFallback, got.Price)
}

func TestResolve_SearchStyleURLRewritten(t *testing.T) {
	search := &fakeSearcher{listing: Listing{
		Name:  "Some Keyboard",
		URL:   "https://www.amazon.com/s?k=mechanical+keyboard&crid=XYZ",
		Price: "$89.00",
	}}
	resolver, _ := newTestResolver(search)

	got := resolver.Resolve(context.Background(), "mechanical keyboard")
	assert.Equal(t, "https://www.amazon.com/s?k=mechanical+keyboard&tag=assistant-20", got.URL)
}
