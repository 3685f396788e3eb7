// Package products resolves product names mentioned by the model into real
// Amazon listings with affiliate-tagged URLs.
package products

// PriceFallback is shown when the search result carries no price display
// string, and on the fallback path.
const PriceFallback = "Check price on Amazon"

// Listing is a resolved product. Immutable once cached.
type Listing struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Price string `json:"price"`
}
