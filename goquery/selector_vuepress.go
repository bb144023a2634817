package goquery

import "github.com/fwojciec/sitedoc"

var _ sitedoc.LinkSelector = (*VuePressSelector)(nil)

// VuePressSelector extracts links from VuePress and VitePress sites.
// Sidebar links come first so breadth-first crawls follow the site's own
// reading order, then navbar and in-page links, then every other anchor.
type VuePressSelector struct{}

// NewVuePressSelector creates a new VuePressSelector.
func NewVuePressSelector() *VuePressSelector {
	return &VuePressSelector{}
}

// Name returns the selector's identifier.
func (s *VuePressSelector) Name() string {
	return "vuepress"
}

var vuePressConfigs = []SelectorConfig{
	// VuePress classic
	{Selector: ".sidebar-links a[href]", Source: sitedoc.SourceSidebar},
	{Selector: ".sidebar a[href]", Source: sitedoc.SourceSidebar},
	// VitePress
	{Selector: ".VPSidebar a[href]", Source: sitedoc.SourceSidebar},
	{Selector: ".VPNav a[href]", Source: sitedoc.SourceNav},
	{Selector: ".navbar a[href]", Source: sitedoc.SourceNav},
	{Selector: ".theme-default-content a[href]", Source: sitedoc.SourceContent},
	{Selector: ".VPDoc a[href]", Source: sitedoc.SourceContent},
	{Selector: "main a[href]", Source: sitedoc.SourceContent},
}

// ExtractLinks returns same-host links in selector order, deduplicated by URL.
func (s *VuePressSelector) ExtractLinks(html string, baseURL string) ([]sitedoc.Link, error) {
	return ExtractLinksWithConfigsAndFallback(html, baseURL, vuePressConfigs)
}
