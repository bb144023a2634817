package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitedoc"
)

// SelectorConfig pairs a CSS selector with the source label attached to the
// links it matches.
type SelectorConfig struct {
	Selector string
	Source   sitedoc.LinkSource
}

// ExtractLinksWithConfigs extracts same-host links from HTML using the
// provided selector configurations, in config order.
// Links are deduplicated by URL; the first occurrence wins.
func ExtractLinksWithConfigs(html string, baseURL string, configs []SelectorConfig) ([]sitedoc.Link, error) {
	return extractLinks(html, baseURL, configs, false)
}

// ExtractLinksWithConfigsAndFallback is like ExtractLinksWithConfigs but
// finishes with a pass over every anchor on the page, so links outside the
// framework's known regions are still discovered.
func ExtractLinksWithConfigsAndFallback(html string, baseURL string, configs []SelectorConfig) ([]sitedoc.Link, error) {
	return extractLinks(html, baseURL, configs, true)
}

func extractLinks(html string, baseURL string, configs []SelectorConfig, includeFallback bool) ([]sitedoc.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitedoc.Errorf(sitedoc.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitedoc.Errorf(sitedoc.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []sitedoc.Link

	collect := func(selector string, source sitedoc.LinkSource) {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok || href == "" || isNonHTTPLink(href) {
				return
			}
			resolved := resolveURL(base, href)
			if resolved == "" || !isSameHost(base, resolved) {
				return
			}
			if _, dup := seen[resolved]; dup {
				return
			}
			seen[resolved] = struct{}{}
			links = append(links, sitedoc.Link{
				URL:    resolved,
				Text:   strings.Join(strings.Fields(sel.Text()), " "),
				Source: source,
			})
		})
	}

	for _, config := range configs {
		collect(config.Selector, config.Source)
	}
	if includeFallback {
		collect("a[href]", sitedoc.SourceAnchor)
	}

	return links, nil
}

// resolveURL resolves href against base with the fragment stripped.
// Returns "" when href cannot be parsed or points back at the base page.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	self := *base
	self.Fragment = ""
	if result == self.String() {
		return ""
	}
	return result
}

// isSameHost reports whether resolved has exactly the host of base.
// Subdomains count as different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
