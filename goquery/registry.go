package goquery

import (
	"sort"

	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.LinkSelectorRegistry = (*Registry)(nil)

// Registry maps detected frameworks to link selectors, falling back to a
// generic selector when the framework is unknown or unregistered.
type Registry struct {
	detector  sitedoc.FrameworkDetector
	fallback  sitedoc.LinkSelector
	selectors map[sitedoc.Framework]sitedoc.LinkSelector
}

// NewRegistry creates a Registry with the given detector and fallback selector.
func NewRegistry(detector sitedoc.FrameworkDetector, fallback sitedoc.LinkSelector) *Registry {
	return &Registry{
		detector:  detector,
		fallback:  fallback,
		selectors: make(map[sitedoc.Framework]sitedoc.LinkSelector),
	}
}

// NewDefaultRegistry returns a Registry wired with the built-in detector,
// the VuePress selector for both VuePress and VitePress, and the generic
// selector as fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), NewGenericSelector())
	vp := NewVuePressSelector()
	r.Register(sitedoc.FrameworkVuePress, vp)
	r.Register(sitedoc.FrameworkVitePress, vp)
	return r
}

// Get returns the selector registered for framework, or nil.
func (r *Registry) Get(framework sitedoc.Framework) sitedoc.LinkSelector {
	return r.selectors[framework]
}

// GetForHTML detects the framework from html and returns its selector,
// or the fallback.
func (r *Registry) GetForHTML(html string) sitedoc.LinkSelector {
	if selector, ok := r.selectors[r.detector.Detect(html)]; ok {
		return selector
	}
	return r.fallback
}

// Register adds or replaces the selector for a framework.
func (r *Registry) Register(framework sitedoc.Framework, selector sitedoc.LinkSelector) {
	r.selectors[framework] = selector
}

// List returns all registered frameworks in sorted order.
func (r *Registry) List() []sitedoc.Framework {
	frameworks := make([]sitedoc.Framework, 0, len(r.selectors))
	for f := range r.selectors {
		frameworks = append(frameworks, f)
	}
	sort.Slice(frameworks, func(i, j int) bool { return frameworks[i] < frameworks[j] })
	return frameworks
}
