package mock

import "github.com/fwojciec/sitedoc"

var _ sitedoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitedoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitedoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sitedoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ sitedoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitedoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
