package products

import (
	"context"
	"log/slog"

	"github.com/Musasteel/ai-pc-assistant/internal/metrics"
)

// Resolver maps product names to listings, consulting the cache before the
// search API and falling back to a bare search URL when the API fails.
// Resolve never returns an error: an unresolvable product still yields a
// usable link.
type Resolver struct {
	cache       Cache
	search      Searcher
	marketplace string
	tag         string
}

func NewResolver(cache Cache, search Searcher, marketplace, tag string) *Resolver {
	return &Resolver{cache: cache, search: search, marketplace: marketplace, tag: tag}
}

// Resolve returns a listing for the product name, from cache when fresh.
func (r *Resolver) Resolve(ctx context.Context, name string) Listing {
	cached, ok, err := r.cache.Get(ctx, name)
	if err != nil {
		slog.Warn("listing cache read failed", "error", err, "product", name)
	} else if ok {
		metrics.ProductLookupsTotal.WithLabelValues("hit").Inc()
		return cached
	}

	listing, err := r.lookup(ctx, name)
	if err != nil {
		slog.Warn("product search failed, using search-url fallback", "error", err, "product", name)
		metrics.ProductLookupsTotal.WithLabelValues("fallback").Inc()
		listing = Listing{
			Name:  name,
			URL:   SearchURL(name, r.marketplace, r.tag),
			Price: PriceFallback,
		}
	} else {
		metrics.ProductLookupsTotal.WithLabelValues("miss").Inc()
	}

	if err := r.cache.Put(ctx, name, listing); err != nil {
		slog.Warn("listing cache write failed", "error", err, "product", name)
	}
	return listing
}

func (r *Resolver) lookup(ctx context.Context, name string) (Listing, error) {
	found, err := r.search.Search(ctx, name)
	if err != nil {
		return Listing{}, err
	}
	return Listing{
		// Keep the name as extracted so marker replacement stays literal.
		Name:  name,
		URL:   CanonicalURL(found.URL, r.marketplace, r.tag),
		Price: found.Price,
	}, nil
}
