package sitedoc

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title from the title element or first heading.
	Title string

	// Text is the normalized plain text of the content region.
	Text string

	// ContentHTML is the content region with boilerplate removed.
	ContentHTML string
}

// Extractor extracts readable content from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns its content.
	// Implementations degrade to simpler strategies instead of failing on
	// malformed markup.
	Extract(html string) (*ExtractResult, error)
}
