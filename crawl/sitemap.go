// Package crawl discovers the documents of a site and fetches their content.
// It holds the discovery strategies, the catalog that caches their output,
// and the fetch pipeline (retry, pacing, extraction, content cache).
package crawl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/fwojciec/sitedoc"
	"golang.org/x/sync/errgroup"
)

// Sitemap materialization defaults.
const (
	DefaultBatchSize  = 5
	DefaultBatchDelay = 100 * time.Millisecond
)

var _ sitedoc.DiscoveryStrategy = (*SitemapStrategy)(nil)

// SitemapStrategy lists documents from <base>/sitemap.xml and fetches each
// page in small batches to learn its title and text.
type SitemapStrategy struct {
	Sitemaps sitedoc.SitemapService
	Pages    sitedoc.ContentFetcher
	Codec    *sitedoc.PathCodec

	// BatchSize bounds concurrent page fetches. Defaults to 5.
	BatchSize int

	// BatchDelay is the pause between batches.
	BatchDelay time.Duration

	Logger *slog.Logger
}

// NewSitemapStrategy creates a SitemapStrategy with default batching.
func NewSitemapStrategy(sitemaps sitedoc.SitemapService, pages sitedoc.ContentFetcher, codec *sitedoc.PathCodec) *SitemapStrategy {
	return &SitemapStrategy{
		Sitemaps:   sitemaps,
		Pages:      pages,
		Codec:      codec,
		BatchSize:  DefaultBatchSize,
		BatchDelay: DefaultBatchDelay,
	}
}

// Name returns MethodSitemap.
func (s *SitemapStrategy) Name() sitedoc.DiscoveryMethod {
	return sitedoc.MethodSitemap
}

// Discover returns one document per eligible sitemap entry, sorted by path.
// A page that cannot be fetched yields a placeholder document instead of
// being dropped.
func (s *SitemapStrategy) Discover(ctx context.Context) ([]*sitedoc.Document, error) {
	urls, err := s.Sitemaps.DiscoverURLs(ctx, s.Codec.BaseURL())
	if err != nil {
		return nil, err
	}

	paths := s.eligiblePaths(urls)
	docs := make([]*sitedoc.Document, len(paths))

	batch := s.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	for start := 0; start < len(paths); start += batch {
		if start > 0 && s.BatchDelay > 0 {
			if err := sleep(ctx, s.BatchDelay); err != nil {
				return nil, err
			}
		}
		end := min(start+batch, len(paths))

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				docs[i] = s.materialize(gctx, paths[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	return docs, nil
}

func (s *SitemapStrategy) eligiblePaths(urls []string) []string {
	logger := s.logger()
	paths := make([]string, 0, len(urls))
	for _, u := range urls {
		p, err := s.Codec.ToLogicalPath(u)
		if err != nil {
			logger.Debug("dropping sitemap entry", "url", u, "err", err)
			continue
		}
		if !sitedoc.IsEligibleDocumentPath(p) {
			continue
		}
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return slices.Compact(paths)
}

func (s *SitemapStrategy) materialize(ctx context.Context, path string) *sitedoc.Document {
	url := s.Codec.ToFetchURL(path)
	page := s.Pages.FetchPage(ctx, url)
	if !page.OK() {
		return sitedoc.NewDocument(path, fallbackTitle(path), url, sitedoc.PlaceholderContent)
	}
	title := page.Title
	if title == "" {
		title = fallbackTitle(path)
	}
	return sitedoc.NewDocument(path, title, url, page.Text)
}

func (s *SitemapStrategy) logger() *slog.Logger {
	return loggerOrDiscard(s.Logger)
}

func fallbackTitle(path string) string {
	if title := sitedoc.TitleFromPath(path); title != "" {
		return title
	}
	return sitedoc.PlaceholderTitle
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
