package goquery

import "github.com/fwojciec/sitedoc"

var _ sitedoc.LinkSelector = (*GenericSelector)(nil)

// GenericSelector extracts links using region selectors common to most
// documentation sites, followed by every remaining anchor.
type GenericSelector struct{}

// NewGenericSelector creates a new GenericSelector.
func NewGenericSelector() *GenericSelector {
	return &GenericSelector{}
}

// Name returns the selector's identifier.
func (s *GenericSelector) Name() string {
	return "generic"
}

var genericConfigs = []SelectorConfig{
	{Selector: ".toc a[href], .table-of-contents a[href], .sidebar a[href], aside a[href]", Source: sitedoc.SourceSidebar},
	{Selector: "nav a[href], [role=\"navigation\"] a[href], .nav a[href], .menu a[href], .navbar a[href]", Source: sitedoc.SourceNav},
	{Selector: "main a[href], article a[href], .content a[href], .doc-content a[href]", Source: sitedoc.SourceContent},
}

// ExtractLinks returns same-host links, deduplicated by URL.
func (s *GenericSelector) ExtractLinks(html string, baseURL string) ([]sitedoc.Link, error) {
	return ExtractLinksWithConfigsAndFallback(html, baseURL, genericConfigs)
}
