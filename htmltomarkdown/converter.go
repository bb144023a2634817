// Package htmltomarkdown renders page content regions as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitedoc"
)

// Ensure Converter implements sitedoc.Converter at compile time.
var _ sitedoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown with the CommonMark and table plugins.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain makes root-relative links and images absolute on domain,
// e.g. "https://docs.example.com".
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = strings.TrimRight(domain, "/")
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitedoc.Errorf(sitedoc.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if c.domain != "" {
		opts = append(opts, converter.WithDomain(c.domain))
	}
	md, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", sitedoc.Errorf(sitedoc.EINTERNAL, "markdown conversion: %v", err)
	}
	return strings.TrimSpace(md), nil
}
