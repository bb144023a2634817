package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.FrameworkDetector = (*Detector)(nil)

// Detector identifies VuePress-family sites from their generator meta tag
// or theme markup.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the framework that generated html, or FrameworkUnknown.
func (d *Detector) Detect(html string) sitedoc.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return sitedoc.FrameworkUnknown
	}

	generator := strings.ToLower(doc.Find("meta[name='generator']").AttrOr("content", ""))
	switch {
	case strings.Contains(generator, "vitepress"):
		return sitedoc.FrameworkVitePress
	case strings.Contains(generator, "vuepress"):
		return sitedoc.FrameworkVuePress
	}

	// VitePress markup is checked first; it reuses some VuePress class names.
	if hasSelector(doc, "#VPContent, .VPDoc, .VPDocAsideOutline, .VPSidebar") {
		return sitedoc.FrameworkVitePress
	}
	if hasSelector(doc, ".theme-default-content, .sidebar-links, .vuepress-navbar") {
		return sitedoc.FrameworkVuePress
	}

	return sitedoc.FrameworkUnknown
}

func hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
