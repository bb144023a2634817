package sitedoc

import "context"

// SitemapService reads page URLs from a site's sitemap.
type SitemapService interface {
	// DiscoverURLs returns the <loc> entries of <baseURL>/sitemap.xml,
	// following sitemap indexes. Entries are deduplicated and sorted.
	// A missing sitemap is reported as an error so callers can move on.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
