package mock

import "github.com/fwojciec/sitedoc"

var _ sitedoc.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of sitedoc.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]sitedoc.Link, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]sitedoc.Link, error) {
	return s.ExtractLinksFn(html, baseURL)
}

func (s *LinkSelector) Name() string {
	return s.NameFn()
}

var _ sitedoc.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of sitedoc.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) sitedoc.Framework
}

func (d *FrameworkDetector) Detect(html string) sitedoc.Framework {
	return d.DetectFn(html)
}

var _ sitedoc.LinkSelectorRegistry = (*LinkSelectorRegistry)(nil)

// LinkSelectorRegistry is a mock implementation of sitedoc.LinkSelectorRegistry.
type LinkSelectorRegistry struct {
	GetFn        func(framework sitedoc.Framework) sitedoc.LinkSelector
	GetForHTMLFn func(html string) sitedoc.LinkSelector
	RegisterFn   func(framework sitedoc.Framework, selector sitedoc.LinkSelector)
	ListFn       func() []sitedoc.Framework
}

func (r *LinkSelectorRegistry) Get(framework sitedoc.Framework) sitedoc.LinkSelector {
	return r.GetFn(framework)
}

func (r *LinkSelectorRegistry) GetForHTML(html string) sitedoc.LinkSelector {
	return r.GetForHTMLFn(html)
}

func (r *LinkSelectorRegistry) Register(framework sitedoc.Framework, selector sitedoc.LinkSelector) {
	r.RegisterFn(framework, selector)
}

func (r *LinkSelectorRegistry) List() []sitedoc.Framework {
	return r.ListFn()
}
