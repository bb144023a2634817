package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitedoc"
	"golang.org/x/net/html"
)

var _ sitedoc.Extractor = (*TextExtractor)(nil)

// contentSelectors are tried in order; the first with non-empty text is
// the content region.
var contentSelectors = []string{
	"main",
	"article",
	".theme-default-content",
	".vp-doc",
	".markdown-body",
	".content",
	"[class*='content']",
}

// boilerplateClass matches class attributes of navigation chrome.
var boilerplateClass = regexp.MustCompile(`(?i)nav|sidebar|menu|header|footer`)

// entityReplacer decodes entities that survive parsing, such as text that
// was escaped twice in the source.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&amp;", "&",
)

// TextExtractor converts documentation HTML into normalized plain text.
//
// The text is assembled from the content region as headings, paragraphs,
// list items, code blocks, inline code, and finally the full residual text
// of the region, so that structurally significant text comes first.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract returns the title, text and content HTML of a page. It never
// fails: malformed input falls back to a plain tag-stripping pass.
func (e *TextExtractor) Extract(raw string) (result *sitedoc.ExtractResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = StripTags(raw), nil
		}
	}()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return StripTags(raw), nil
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find("script, style, noscript, iframe, template").Remove()

	region := contentRegion(doc)
	region.Find("nav, aside, header, footer").Remove()
	region.Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return boilerplateClass.MatchString(class)
	}).Remove()

	parts := make([]string, 0, 64)
	collect := func(sel *goquery.Selection) {
		sel.Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				parts = append(parts, t)
			}
		})
	}
	collect(region.Find("h1, h2, h3, h4, h5, h6"))
	collect(region.Find("p"))
	collect(region.Find("li"))
	collect(region.Find("pre"))
	collect(region.Find("code").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered("pre").Length() == 0
	}))
	parts = append(parts, region.Text())

	contentHTML, _ := region.Html()

	return &sitedoc.ExtractResult{
		Title:       title,
		Text:        normalizeText(strings.Join(parts, " ")),
		ContentHTML: strings.TrimSpace(contentHTML),
	}, nil
}

// contentRegion returns the first content container with text, falling
// back to the body and then the whole document.
func contentRegion(doc *goquery.Document) *goquery.Selection {
	for _, sel := range contentSelectors {
		match := doc.Find(sel).First()
		if match.Length() > 0 && strings.TrimSpace(match.Text()) != "" {
			return match
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 && strings.TrimSpace(body.Text()) != "" {
		return body
	}
	return doc.Selection
}

// StripTags extracts text with a tokenizer, skipping script and style
// content. It is the degraded path used when structured extraction fails.
func StripTags(raw string) *sitedoc.ExtractResult {
	z := html.NewTokenizer(strings.NewReader(raw))

	var (
		b       strings.Builder
		title   string
		skip    int
		inTitle bool
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return &sitedoc.ExtractResult{
				Title: strings.TrimSpace(title),
				Text:  normalizeText(b.String()),
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style", "noscript", "iframe", "template":
				skip++
			case "title":
				inTitle = true
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style", "noscript", "iframe", "template":
				if skip > 0 {
					skip--
				}
			case "title":
				inTitle = false
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := string(z.Text())
			if inTitle {
				title += text
				continue
			}
			b.WriteString(text)
			b.WriteByte(' ')
		}
	}
}

// normalizeText decodes leftover entities and collapses whitespace.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(entityReplacer.Replace(s)), " ")
}
