package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/lru"
	"golang.org/x/sync/singleflight"
)

// DefaultContentTTL is how long an extracted page stays cached.
const DefaultContentTTL = 5 * time.Minute

var _ sitedoc.ContentFetcher = (*ContentFetcher)(nil)

// ContentFetcher fetches pages, extracts their text and links, and caches
// the result by URL. It never returns an error: failures produce a page
// with empty text.
type ContentFetcher struct {
	Fetcher       sitedoc.Fetcher
	Extractor     sitedoc.Extractor
	LinkSelectors sitedoc.LinkSelectorRegistry // optional
	Cache         *lru.Cache[string, *sitedoc.Page]
	Logger        *slog.Logger

	group singleflight.Group
}

// NewContentFetcher creates a ContentFetcher with a content cache of the
// given lifetime.
func NewContentFetcher(fetcher sitedoc.Fetcher, extractor sitedoc.Extractor, selectors sitedoc.LinkSelectorRegistry, ttl time.Duration) *ContentFetcher {
	return &ContentFetcher{
		Fetcher:       fetcher,
		Extractor:     extractor,
		LinkSelectors: selectors,
		Cache:         lru.MustNew[string, *sitedoc.Page](ttl),
	}
}

// FetchPage returns the page at url, from cache when fresh. Concurrent
// requests for the same URL share one fetch; a caller whose ctx ends
// stops waiting and gets an empty page while the fetch completes for the
// others.
func (c *ContentFetcher) FetchPage(ctx context.Context, url string) *sitedoc.Page {
	if c.Cache != nil {
		if page, ok := c.Cache.Get(url); ok {
			cached := *page
			cached.Cached = true
			return &cached
		}
	}

	// The shared fetch outlives any one caller, so it must not inherit the
	// leader's cancellation. Fetcher timeouts still bound it.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(url, func() (any, error) {
		if c.Cache != nil {
			if page, ok := c.Cache.Get(url); ok {
				return page, nil
			}
		}
		return c.fetch(shared, url), nil
	})

	select {
	case r := <-ch:
		page := *r.Val.(*sitedoc.Page)
		return &page
	case <-ctx.Done():
		return &sitedoc.Page{URL: url}
	}
}

func (c *ContentFetcher) fetch(ctx context.Context, url string) *sitedoc.Page {
	logger := c.logger()

	body, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Warn("content unavailable",
			"url", url,
			"code", sitedoc.ErrorCode(err),
			"err", err,
		)
		return &sitedoc.Page{URL: url}
	}

	page := &sitedoc.Page{URL: url}
	result, err := c.Extractor.Extract(body)
	if err != nil {
		logger.Warn("extraction failed", "url", url, "err", err)
	} else {
		page.Title = result.Title
		page.Text = result.Text
		page.ContentHTML = result.ContentHTML
	}

	if c.LinkSelectors != nil {
		selector := c.LinkSelectors.GetForHTML(body)
		links, err := selector.ExtractLinks(body, url)
		if err != nil {
			logger.Warn("link extraction failed", "url", url, "selector", selector.Name(), "err", err)
		}
		page.Links = links
	}

	if c.Cache != nil {
		c.Cache.Add(url, page)
	}
	return page
}

func (c *ContentFetcher) logger() *slog.Logger {
	return loggerOrDiscard(c.Logger)
}
