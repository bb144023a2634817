package slog_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/mock"
	sdslog "github.com/fwojciec/sitedoc/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingRegistry_GetForHTML(t *testing.T) {
	t.Parallel()

	t.Run("logs detected framework and selector", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		selector := &mock.LinkSelector{NameFn: func() string { return "vuepress" }}
		inner := &mock.LinkSelectorRegistry{
			GetForHTMLFn: func(html string) sitedoc.LinkSelector { return selector },
		}
		detector := &mock.FrameworkDetector{
			DetectFn: func(html string) sitedoc.Framework { return sitedoc.FrameworkVuePress },
		}

		got := sdslog.NewLoggingRegistry(inner, detector, debugLogger(&buf)).GetForHTML("<html></html>")

		assert.Equal(t, selector, got)
		output := buf.String()
		assert.Contains(t, output, "link selector")
		assert.Contains(t, output, "framework=vuepress")
		assert.Contains(t, output, "selector=vuepress")
	})

	t.Run("logs unknown framework", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		selector := &mock.LinkSelector{NameFn: func() string { return "generic" }}
		inner := &mock.LinkSelectorRegistry{
			GetForHTMLFn: func(html string) sitedoc.LinkSelector { return selector },
		}
		detector := &mock.FrameworkDetector{
			DetectFn: func(html string) sitedoc.Framework { return sitedoc.FrameworkUnknown },
		}

		sdslog.NewLoggingRegistry(inner, detector, debugLogger(&buf)).GetForHTML("<html></html>")

		assert.Contains(t, buf.String(), "framework=(unknown)")
		assert.Contains(t, buf.String(), "selector=generic")
	})
}

func TestLoggingRegistry_Delegates(t *testing.T) {
	t.Parallel()

	var registered sitedoc.Framework
	selector := &mock.LinkSelector{NameFn: func() string { return "vuepress" }}
	inner := &mock.LinkSelectorRegistry{
		GetFn: func(f sitedoc.Framework) sitedoc.LinkSelector { return selector },
		RegisterFn: func(f sitedoc.Framework, s sitedoc.LinkSelector) {
			registered = f
		},
		ListFn: func() []sitedoc.Framework { return []sitedoc.Framework{sitedoc.FrameworkVuePress} },
	}

	var buf bytes.Buffer
	r := sdslog.NewLoggingRegistry(inner, &mock.FrameworkDetector{}, debugLogger(&buf))

	assert.Equal(t, selector, r.Get(sitedoc.FrameworkVuePress))
	r.Register(sitedoc.FrameworkVitePress, selector)
	assert.Equal(t, sitedoc.FrameworkVitePress, registered)
	assert.Equal(t, []sitedoc.Framework{sitedoc.FrameworkVuePress}, r.List())
	assert.Empty(t, buf.String())
}
