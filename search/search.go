// Package search implements the public document operations on top of a
// document catalog and a content fetcher.
package search

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/lru"
	"golang.org/x/sync/errgroup"
)

// Version is reported by SiteInfo.
const Version = "1.0.0"

// DefaultSearchTTL is how long ranked results for a query are reused.
const DefaultSearchTTL = 10 * time.Minute

// DefaultConcurrency bounds page fetches while filling search content.
const DefaultConcurrency = 5

// Features lists the capabilities reported by SiteInfo.
var Features = []string{
	"sitemap-parsing",
	"link-crawling",
	"pattern-discovery",
	"intent-search",
	"content-cache",
	"search-cache",
}

// Sizer reports the number of entries held by a cache.
type Sizer interface {
	Len() int
}

var _ sitedoc.DocumentService = (*Service)(nil)

// Service answers listing, retrieval, search and structure requests.
// No method returns an error: failures degrade to empty results.
type Service struct {
	Catalog sitedoc.DocumentCatalog
	Pages   sitedoc.ContentFetcher
	Codec   *sitedoc.PathCodec

	// Converter renders page content as Markdown. Optional.
	Converter sitedoc.Converter

	// Cache holds ranked results keyed by query and category.
	Cache *lru.Cache[uint64, []*sitedoc.SearchResult]

	// ContentCache and the TTLs are reported by SiteInfo. Optional.
	ContentCache Sizer
	ContentTTL   time.Duration
	CatalogTTL   time.Duration

	// Concurrency bounds page fetches during search. Defaults to 5.
	Concurrency int

	Logger *slog.Logger
}

// NewService creates a Service with a search cache of the given lifetime.
func NewService(catalog sitedoc.DocumentCatalog, pages sitedoc.ContentFetcher, codec *sitedoc.PathCodec, searchTTL time.Duration) *Service {
	return &Service{
		Catalog:     catalog,
		Pages:       pages,
		Codec:       codec,
		Cache:       lru.MustNew[uint64, []*sitedoc.SearchResult](searchTTL),
		Concurrency: DefaultConcurrency,
	}
}

// ListDocuments returns catalog documents matching filter, without content.
func (s *Service) ListDocuments(ctx context.Context, filter sitedoc.CategoryFilter) []*sitedoc.Document {
	docs := s.documents(ctx, filter)
	out := make([]*sitedoc.Document, len(docs))
	for i, d := range docs {
		cp := *d
		cp.Content = ""
		out[i] = &cp
	}
	return out
}

// GetDocumentContent returns the text of the page at path, or "" when it
// is unavailable.
func (s *Service) GetDocumentContent(ctx context.Context, path string) string {
	page := s.page(ctx, path)
	if page == nil {
		return ""
	}
	return page.Text
}

// GetDocument returns the page at path with its metadata, or nil when the
// content is unavailable.
func (s *Service) GetDocument(ctx context.Context, path string) *sitedoc.DocumentDetail {
	page := s.page(ctx, path)
	if !page.OK() {
		return nil
	}

	logical, err := s.Codec.ToLogicalPath(page.URL)
	if err != nil {
		logical = path
	}
	title := page.Title
	if title == "" {
		title = s.catalogTitle(ctx, logical)
	}
	return &sitedoc.DocumentDetail{
		Path:    logical,
		Title:   title,
		URL:     page.URL,
		Content: page.Text,
		Cached:  page.Cached,
	}
}

// GetDocumentMarkdown returns the content region of the page at path as
// Markdown, or "" when the page or a converter is unavailable.
func (s *Service) GetDocumentMarkdown(ctx context.Context, path string) string {
	if s.Converter == nil {
		return ""
	}
	page := s.page(ctx, path)
	if page == nil || page.ContentHTML == "" {
		return ""
	}
	md, err := s.Converter.Convert(page.ContentHTML)
	if err != nil {
		s.logger().Warn("markdown conversion failed", "path", path, "err", err)
		return ""
	}
	return md
}

// SearchDocuments ranks catalog documents matching filter against query and
// returns at most limit results. Ranked lists are cached per query and
// category for the search TTL.
func (s *Service) SearchDocuments(ctx context.Context, query string, filter sitedoc.CategoryFilter, limit int) []*sitedoc.SearchResult {
	if limit <= 0 {
		limit = sitedoc.DefaultSearchLimit
	}
	if strings.TrimSpace(query) == "" {
		return []*sitedoc.SearchResult{}
	}

	key := cacheKey(query, filter)
	results, ok := s.Cache.Get(key)
	if !ok {
		intent := sitedoc.ParseSearchIntent(query)
		docs := s.withContent(ctx, s.documents(ctx, filter))
		results = sitedoc.Rank(docs, intent)
		if ctx.Err() == nil {
			s.Cache.Add(key, results)
		}
	}

	n := min(limit, len(results))
	out := make([]*sitedoc.SearchResult, n)
	for i := range n {
		cp := *results[i]
		out[i] = &cp
	}
	return out
}

// GetDocumentStructure groups every catalog document by category.
func (s *Service) GetDocumentStructure(ctx context.Context) *sitedoc.DocumentStructure {
	return sitedoc.NewDocumentStructure(s.documents(ctx, sitedoc.FilterAll))
}

// SiteInfo describes the site, the current catalog and the caches.
func (s *Service) SiteInfo(ctx context.Context) *sitedoc.SiteInfo {
	d := s.Catalog.Discovery(ctx)
	info := &sitedoc.SiteInfo{
		BaseURL:         s.Codec.BaseURL(),
		Version:         Version,
		DiscoveryMethod: d.Method,
		DocumentCount:   len(d.Documents),
		SearchCacheSize: s.Cache.Len(),
		ContentTTL:      s.ContentTTL,
		SearchTTL:       s.Cache.TTL(),
		CatalogTTL:      s.CatalogTTL,
		Features:        append([]string(nil), Features...),
	}
	if s.ContentCache != nil {
		info.ContentCacheSize = s.ContentCache.Len()
	}
	return info
}

func (s *Service) documents(ctx context.Context, filter sitedoc.CategoryFilter) []*sitedoc.Document {
	d := s.Catalog.Discovery(ctx)
	docs := make([]*sitedoc.Document, 0, len(d.Documents))
	for _, doc := range d.Documents {
		if filter.Match(doc.Category) {
			docs = append(docs, doc)
		}
	}
	return docs
}

// withContent returns copies of docs whose missing or placeholder content
// has been fetched. Documents whose page is unavailable end up with empty
// content.
func (s *Service) withContent(ctx context.Context, docs []*sitedoc.Document) []*sitedoc.Document {
	out := make([]*sitedoc.Document, len(docs))

	limit := s.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, doc := range docs {
		cp := *doc
		out[i] = &cp
		if cp.Content == sitedoc.PlaceholderContent {
			cp.Content = ""
		}
		if cp.Content != "" {
			continue
		}
		g.Go(func() error {
			page := s.Pages.FetchPage(gctx, s.Codec.ToFetchURL(cp.Path))
			out[i].Content = page.Text
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// page fetches the page for a logical path or an in-scope absolute URL.
func (s *Service) page(ctx context.Context, path string) *sitedoc.Page {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	url := s.Codec.ToFetchURL(path)
	if !s.Codec.InScope(url) {
		s.logger().Warn("rejecting out-of-scope document", "path", path)
		return nil
	}
	return s.Pages.FetchPage(ctx, url)
}

func (s *Service) catalogTitle(ctx context.Context, path string) string {
	for _, doc := range s.Catalog.Discovery(ctx).Documents {
		if doc.Path == path {
			return doc.Title
		}
	}
	if title := sitedoc.TitleFromPath(path); title != "" {
		return title
	}
	return sitedoc.PlaceholderTitle
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func cacheKey(query string, filter sitedoc.CategoryFilter) uint64 {
	if filter == "" {
		filter = sitedoc.FilterAll
	}
	return xxhash.Sum64String(query + "\x00" + string(filter))
}
