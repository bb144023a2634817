package slog

import (
	"log/slog"

	"github.com/fwojciec/sitedoc"
)

// Ensure LoggingRegistry implements sitedoc.LinkSelectorRegistry.
var _ sitedoc.LinkSelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry logs the framework detected for each page and the
// selector chosen for it.
type LoggingRegistry struct {
	next     sitedoc.LinkSelectorRegistry
	detector sitedoc.FrameworkDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next sitedoc.LinkSelectorRegistry, detector sitedoc.FrameworkDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(framework sitedoc.Framework) sitedoc.LinkSelector {
	return r.next.Get(framework)
}

// GetForHTML returns the wrapped registry's selector and logs the choice.
func (r *LoggingRegistry) GetForHTML(html string) sitedoc.LinkSelector {
	selector := r.next.GetForHTML(html)

	framework := string(r.detector.Detect(html))
	if framework == "" {
		framework = "(unknown)"
	}
	r.logger.Debug("link selector",
		"framework", framework,
		"selector", selector.Name(),
	)
	return selector
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(framework sitedoc.Framework, selector sitedoc.LinkSelector) {
	r.next.Register(framework, selector)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []sitedoc.Framework {
	return r.next.List()
}
