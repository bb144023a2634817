package crawl

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/fwojciec/sitedoc"
)

// DefaultCrawlBudget is the maximum number of pages a crawl visits.
const DefaultCrawlBudget = 100

var _ sitedoc.DiscoveryStrategy = (*CrawlStrategy)(nil)

// CrawlStrategy walks the site breadth-first from its root page, recording
// every page that yields text and following in-scope document links.
// The walk visits at most MaxPages distinct paths, so it terminates on
// cyclic or unbounded link graphs.
type CrawlStrategy struct {
	Pages sitedoc.ContentFetcher
	Codec *sitedoc.PathCodec

	// MaxPages bounds the number of visited pages. Defaults to 100.
	MaxPages int

	// Limiter paces requests per host. Nil disables pacing.
	Limiter sitedoc.DomainLimiter

	Logger *slog.Logger
}

// NewCrawlStrategy creates a CrawlStrategy with the default budget.
func NewCrawlStrategy(pages sitedoc.ContentFetcher, codec *sitedoc.PathCodec) *CrawlStrategy {
	return &CrawlStrategy{
		Pages:    pages,
		Codec:    codec,
		MaxPages: DefaultCrawlBudget,
	}
}

// Name returns MethodCrawl.
func (s *CrawlStrategy) Name() sitedoc.DiscoveryMethod {
	return sitedoc.MethodCrawl
}

// Discover performs the walk and returns documents in visit order.
// Cancellation stops the walk and returns what was found so far along with
// the context error.
func (s *CrawlStrategy) Discover(ctx context.Context) ([]*sitedoc.Document, error) {
	budget := s.MaxPages
	if budget <= 0 {
		budget = DefaultCrawlBudget
	}
	logger := loggerOrDiscard(s.Logger)

	// The frontier holds canonical fetch URLs, so one URL is one path.
	frontier := NewCrawlFrontier(budget)
	frontier.Push(sitedoc.Link{URL: s.Codec.ToFetchURL("/")})

	var docs []*sitedoc.Document
	visited := 0
	for visited < budget {
		if err := ctx.Err(); err != nil {
			return docs, err
		}
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		visited++

		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx, hostOf(link.URL)); err != nil {
				return docs, err
			}
		}

		page := s.Pages.FetchPage(ctx, link.URL)
		if !page.OK() {
			logger.Debug("crawl skipped page", "url", link.URL)
			continue
		}

		path, err := s.Codec.ToLogicalPath(link.URL)
		if err != nil {
			continue
		}
		docs = append(docs, sitedoc.NewDocument(path, pageTitle(page, link, path), link.URL, page.Text))

		for _, next := range page.Links {
			if canonical, ok := s.canonicalURL(next.URL); ok {
				frontier.Push(sitedoc.Link{URL: canonical, Text: next.Text, Source: next.Source})
			}
		}
	}

	logger.Debug("crawl finished", "visited", visited, "count", len(docs), "queued", frontier.Len())
	return docs, nil
}

// canonicalURL maps a discovered link to the fetch URL of its logical path.
// Links outside the base URL or naming non-document paths are rejected.
func (s *CrawlStrategy) canonicalURL(rawURL string) (string, bool) {
	if !s.Codec.InScope(rawURL) {
		return "", false
	}
	path, err := s.Codec.ToLogicalPath(rawURL)
	if err != nil || !sitedoc.IsEligibleDocumentPath(path) {
		return "", false
	}
	return s.Codec.ToFetchURL(path), true
}

func pageTitle(page *sitedoc.Page, link sitedoc.Link, path string) string {
	switch {
	case page.Title != "":
		return page.Title
	case link.Text != "":
		return link.Text
	}
	return fallbackTitle(path)
}

func hostOf(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return u.Host
	}
	return rawURL
}
