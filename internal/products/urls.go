package products

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// asinPattern matches a 10-character alphanumeric ASIN-style identifier in
// a URL path segment, e.g. /dp/B0ABCD1234 or /gp/product/B0ABCD1234.
var asinPattern = regexp.MustCompile(`/([A-Z0-9]{10})(?:[/?]|$)`)

// CanonicalURL rewrites a commerce URL to a stable, affiliate-tagged form.
// Detail pages collapse to /dp/<ASIN>, search URLs keep their k= query.
// Anything unrecognized passes through unchanged.
func CanonicalURL(rawURL, marketplace, tag string) string {
	if m := asinPattern.FindStringSubmatch(rawURL); m != nil {
		return fmt.Sprintf("https://%s/dp/%s?tag=%s", marketplace, m[1], tag)
	}

	if u, err := url.Parse(rawURL); err == nil {
		if k := u.Query().Get("k"); k != "" {
			return fmt.Sprintf("https://%s/s?k=%s&tag=%s", marketplace, url.QueryEscape(k), tag)
		}
	}

	return rawURL
}

// SearchURL builds a marketplace search link for a product name, used when
// no listing could be resolved. Spaces become '+' per Amazon's search URLs.
func SearchURL(name, marketplace, tag string) string {
	return fmt.Sprintf("https://%s/s?k=%s&tag=%s", marketplace, strings.ReplaceAll(name, " ", "+"), tag)
}
