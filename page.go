package sitedoc

import "context"

// Page represents a fetched and extracted documentation page.
type Page struct {
	URL         string
	Title       string
	Text        string
	ContentHTML string
	Links       []Link

	// Cached is set when the page was served from the content cache.
	Cached bool
}

// OK reports whether the page has usable text.
func (p *Page) OK() bool {
	return p != nil && p.Text != ""
}

// ContentFetcher retrieves pages and their text, hiding retry, caching and
// extraction from callers.
type ContentFetcher interface {
	// FetchPage never fails: on terminal failure it returns a page with
	// empty text, which callers treat as unknown rather than absent.
	FetchPage(ctx context.Context, url string) *Page
}
