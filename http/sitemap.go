package http

import (
	"context"
	"html"
	"regexp"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitedoc"
)

// Ensure SitemapService implements sitedoc.SitemapService.
var _ sitedoc.SitemapService = (*SitemapService)(nil)

// maxSitemapDepth bounds sitemap index recursion.
const maxSitemapDepth = 3

// locPattern finds <loc> values when a sitemap is not well-formed XML.
var locPattern = regexp.MustCompile(`(?is)<loc>\s*(.*?)\s*</loc>`)

// SitemapService discovers URLs from a site's sitemap.xml.
type SitemapService struct {
	fetcher sitedoc.Fetcher
}

// NewSitemapService creates a new SitemapService that retrieves sitemaps
// through fetcher.
func NewSitemapService(fetcher sitedoc.Fetcher) *SitemapService {
	return &SitemapService{fetcher: fetcher}
}

// DiscoverURLs returns the page URLs listed in <baseURL>/sitemap.xml.
// Sitemap indexes are followed; nested sitemaps that fail to load are
// skipped. The result is deduplicated and sorted, and is empty (not nil)
// when the sitemap lists nothing.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sitemapURL := strings.TrimRight(baseURL, "/") + "/sitemap.xml"
	seen := make(map[string]bool)
	urls, err := s.processSitemap(ctx, sitemapURL, seen, 0)
	if err != nil {
		return nil, err
	}

	slices.Sort(urls)
	return slices.Compact(urls), nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and sitemapindex.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Avoid processing the same sitemap twice
	if seen[sitemapURL] {
		return []string{}, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil || doc.Root() == nil {
		return scanLocs(body), nil
	}

	root := doc.Root()
	if root.Tag == "sitemapindex" {
		return s.processSitemapIndex(ctx, root, seen, depth)
	}

	// Otherwise treat as urlset
	return parseURLSet(root), nil
}

// processSitemapIndex processes a <sitemapindex> element recursively.
func (s *SitemapService) processSitemapIndex(ctx context.Context, root *etree.Element, seen map[string]bool, depth int) ([]string, error) {
	allURLs := []string{}
	if depth >= maxSitemapDepth {
		return allURLs, nil
	}

	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		sitemapURL := strings.TrimSpace(loc.Text())
		if sitemapURL == "" {
			continue
		}

		urls, err := s.processSitemap(ctx, sitemapURL, seen, depth+1)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		allURLs = append(allURLs, urls...)
	}

	return allURLs, nil
}

// parseURLSet extracts URLs from a <urlset> element.
func parseURLSet(root *etree.Element) []string {
	urls := []string{}
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// scanLocs extracts every <loc> value from a document that failed to parse.
func scanLocs(body string) []string {
	urls := []string{}
	for _, m := range locPattern.FindAllStringSubmatch(body, -1) {
		if u := strings.TrimSpace(html.UnescapeString(m[1])); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
