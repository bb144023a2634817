package search_test

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/crawl"
	"github.com/fwojciec/sitedoc/mock"
	"github.com/fwojciec/sitedoc/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "https://docs.example.com/zongheng-doc"

func newCodec(t *testing.T) *sitedoc.PathCodec {
	t.Helper()
	codec, err := sitedoc.NewPathCodec(testBase)
	require.NoError(t, err)
	return codec
}

func staticCatalog(method sitedoc.DiscoveryMethod, docs ...*sitedoc.Document) *mock.DocumentCatalog {
	return &mock.DocumentCatalog{
		DiscoveryFn: func(ctx context.Context) *sitedoc.Discovery {
			return &sitedoc.Discovery{Method: method, Documents: docs}
		},
	}
}

// pagesByPath serves pages keyed by fetch URL suffix and counts requests.
type pagesByPath struct {
	mu    sync.Mutex
	pages map[string]*sitedoc.Page
	calls map[string]int
}

func newPages(pages map[string]*sitedoc.Page) *pagesByPath {
	return &pagesByPath{pages: pages, calls: make(map[string]int)}
}

func (p *pagesByPath) fetcher() *mock.ContentFetcher {
	return &mock.ContentFetcher{
		FetchPageFn: func(ctx context.Context, url string) *sitedoc.Page {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.calls[url]++
			path := strings.TrimPrefix(url, testBase)
			if page, ok := p.pages[path]; ok {
				cp := *page
				cp.URL = url
				return &cp
			}
			return &sitedoc.Page{URL: url}
		},
	}
}

func (p *pagesByPath) total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		n += c
	}
	return n
}

func catalogDocs(t *testing.T) []*sitedoc.Document {
	t.Helper()
	codec := newCodec(t)
	doc := func(path, title, content string) *sitedoc.Document {
		return sitedoc.NewDocument(path, title, codec.ToFetchURL(path), content)
	}
	return []*sitedoc.Document{
		doc("/", "纵横框架文档", "欢迎使用纵横框架。"),
		doc("/frontend/components/dialog", "z-dialog 使用指南", "对话框组件。z-dialog 支持拖拽。"),
		doc("/frontend/components/form", "表单", "表单可以放在 z-dialog 里。"),
		doc("/backend/database", "数据库", "数据库连接池配置。"),
		doc("/deployment", "部署指南", "部署文档。"),
	}
}

func TestService_ListDocuments(t *testing.T) {
	t.Parallel()

	svc := search.NewService(staticCatalog(sitedoc.MethodSitemap, catalogDocs(t)...), newPages(nil).fetcher(), newCodec(t), time.Minute)

	t.Run("all returns every document without content", func(t *testing.T) {
		t.Parallel()

		docs := svc.ListDocuments(context.Background(), sitedoc.FilterAll)

		require.Len(t, docs, 5)
		for _, d := range docs {
			assert.Empty(t, d.Content)
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		docs := svc.ListDocuments(context.Background(), sitedoc.FilterFrontend)

		require.Len(t, docs, 2)
		for _, d := range docs {
			assert.Equal(t, sitedoc.CategoryFrontend, d.Category)
		}
		assert.Len(t, svc.ListDocuments(context.Background(), sitedoc.FilterBackend), 1)
	})

	t.Run("does not modify the catalog", func(t *testing.T) {
		t.Parallel()

		docs := catalogDocs(t)
		svc := search.NewService(staticCatalog(sitedoc.MethodSitemap, docs...), newPages(nil).fetcher(), newCodec(t), time.Minute)

		svc.ListDocuments(context.Background(), sitedoc.FilterAll)

		assert.NotEmpty(t, docs[0].Content)
	})
}

func TestService_SearchDocuments(t *testing.T) {
	t.Parallel()

	t.Run("ranks component title above incidental mention", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodSitemap, catalogDocs(t)...), newPages(nil).fetcher(), newCodec(t), time.Minute)

		results := svc.SearchDocuments(context.Background(), "z-dialog 用法", sitedoc.FilterAll, 0)

		require.Len(t, results, 2)
		assert.Equal(t, "/frontend/components/dialog", results[0].Path)
		assert.GreaterOrEqual(t, results[0].Score, 15.0)
		assert.Equal(t, "/frontend/components/form", results[1].Path)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("excludes zero-score documents", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodSitemap, catalogDocs(t)...), newPages(nil).fetcher(), newCodec(t), time.Minute)

		results := svc.SearchDocuments(context.Background(), "kubernetes", sitedoc.FilterAll, 10)

		assert.Empty(t, results)
	})

	t.Run("respects category filter", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodSitemap, catalogDocs(t)...), newPages(nil).fetcher(), newCodec(t), time.Minute)

		results := svc.SearchDocuments(context.Background(), "z-dialog 用法", sitedoc.FilterBackend, 10)

		assert.Empty(t, results)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodSitemap, catalogDocs(t)...), newPages(nil).fetcher(), newCodec(t), time.Minute)

		results := svc.SearchDocuments(context.Background(), "z-dialog 用法", sitedoc.FilterAll, 1)

		require.Len(t, results, 1)
		assert.Equal(t, "/frontend/components/dialog", results[0].Path)
	})

	t.Run("empty query returns no results", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodSitemap, catalogDocs(t)...), newPages(nil).fetcher(), newCodec(t), time.Minute)

		assert.Empty(t, svc.SearchDocuments(context.Background(), "   ", sitedoc.FilterAll, 10))
	})

	t.Run("fetches content for documents without it", func(t *testing.T) {
		t.Parallel()

		pages := newPages(map[string]*sitedoc.Page{
			"/frontend/components/index.html": {Text: "组件库包含 z-dialog 与 z-table。"},
		})
		codec := newCodec(t)
		svc := search.NewService(staticCatalog(sitedoc.MethodPattern,
			sitedoc.NewDocument("/frontend/components/", "组件库", codec.ToFetchURL("/frontend/components/"), ""),
			sitedoc.NewDocument("/deployment", "部署指南", codec.ToFetchURL("/deployment"), ""),
		), pages.fetcher(), codec, time.Minute)

		results := svc.SearchDocuments(context.Background(), "z-table", sitedoc.FilterAll, 10)

		require.Len(t, results, 1)
		assert.Equal(t, "/frontend/components/", results[0].Path)
		assert.Equal(t, 2, pages.total())
	})

	t.Run("placeholder excerpt when content is unavailable", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodStatic,
			sitedoc.NewDocument("/deployment", "部署指南", "", ""),
		), newPages(nil).fetcher(), newCodec(t), time.Minute)

		results := svc.SearchDocuments(context.Background(), "部署指南", sitedoc.FilterAll, 10)

		require.Len(t, results, 1)
		assert.Equal(t, "这是关于部署指南的文档内容...", results[0].Excerpt)
	})

	t.Run("refetches documents holding placeholder content", func(t *testing.T) {
		t.Parallel()

		pages := newPages(map[string]*sitedoc.Page{
			"/backend/transaction.html": {Title: "事务", Text: "事务管理 transaction rollback"},
		})
		codec := newCodec(t)
		svc := search.NewService(staticCatalog(sitedoc.MethodSitemap,
			sitedoc.NewDocument("/backend/transaction", "事务", codec.ToFetchURL("/backend/transaction"), sitedoc.PlaceholderContent),
			sitedoc.NewDocument("/backend/cache", "缓存", codec.ToFetchURL("/backend/cache"), sitedoc.PlaceholderContent),
		), pages.fetcher(), codec, time.Minute)

		found := svc.SearchDocuments(context.Background(), "transaction", sitedoc.FilterAll, 10)
		placeholder := svc.SearchDocuments(context.Background(), "retrieval failed", sitedoc.FilterAll, 10)

		require.Len(t, found, 1)
		assert.Equal(t, "/backend/transaction", found[0].Path)
		assert.Empty(t, placeholder)
		assert.Equal(t, 4, pages.total())
	})

	t.Run("canceled search is not cached", func(t *testing.T) {
		t.Parallel()

		codec := newCodec(t)
		pages := &mock.ContentFetcher{
			FetchPageFn: func(ctx context.Context, url string) *sitedoc.Page {
				if ctx.Err() != nil {
					return &sitedoc.Page{URL: url}
				}
				return &sitedoc.Page{URL: url, Text: "组件库包含 z-table。"}
			},
		}
		svc := search.NewService(staticCatalog(sitedoc.MethodSitemap,
			sitedoc.NewDocument("/frontend/components/", "组件库", codec.ToFetchURL("/frontend/components/"), ""),
		), pages, codec, time.Minute)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		interrupted := svc.SearchDocuments(ctx, "z-table", sitedoc.FilterAll, 10)
		assert.Equal(t, 0, svc.Cache.Len())

		healthy := svc.SearchDocuments(context.Background(), "z-table", sitedoc.FilterAll, 10)

		assert.Empty(t, interrupted)
		require.Len(t, healthy, 1)
		assert.Equal(t, "/frontend/components/", healthy[0].Path)
		assert.Equal(t, 1, svc.Cache.Len())
	})

	t.Run("caches ranked results per query and category", func(t *testing.T) {
		t.Parallel()

		var discoveries atomic.Int32
		catalog := &mock.DocumentCatalog{
			DiscoveryFn: func(ctx context.Context) *sitedoc.Discovery {
				discoveries.Add(1)
				return &sitedoc.Discovery{Method: sitedoc.MethodSitemap, Documents: catalogDocs(t)}
			},
		}
		svc := search.NewService(catalog, newPages(nil).fetcher(), newCodec(t), time.Minute)

		first := svc.SearchDocuments(context.Background(), "z-dialog 用法", sitedoc.FilterAll, 10)
		second := svc.SearchDocuments(context.Background(), "z-dialog 用法", sitedoc.FilterAll, 1)
		svc.SearchDocuments(context.Background(), "z-dialog 用法", sitedoc.FilterFrontend, 10)

		assert.Equal(t, int32(2), discoveries.Load())
		require.Len(t, second, 1)
		assert.Equal(t, first[0], second[0])
		assert.Equal(t, 2, svc.Cache.Len())
	})

	t.Run("returned results do not alias the cache", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodSitemap, catalogDocs(t)...), newPages(nil).fetcher(), newCodec(t), time.Minute)

		first := svc.SearchDocuments(context.Background(), "z-dialog 用法", sitedoc.FilterAll, 10)
		first[0].Title = "changed"
		second := svc.SearchDocuments(context.Background(), "z-dialog 用法", sitedoc.FilterAll, 10)

		assert.Equal(t, "z-dialog 使用指南", second[0].Title)
	})
}

func TestService_GetDocumentContent(t *testing.T) {
	t.Parallel()

	t.Run("two reads within the content TTL fetch once", func(t *testing.T) {
		t.Parallel()

		var fetches atomic.Int32
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetches.Add(1)
				assert.Equal(t, testBase+"/backend/api-design.html", url)
				return "<main><p>REST 风格</p></main>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*sitedoc.ExtractResult, error) {
				return &sitedoc.ExtractResult{Title: "API设计指南", Text: "REST 风格"}, nil
			},
		}
		pages := crawl.NewContentFetcher(fetcher, extractor, nil, crawl.DefaultContentTTL)
		svc := search.NewService(staticCatalog(sitedoc.MethodStatic), pages, newCodec(t), time.Minute)

		first := svc.GetDocumentContent(context.Background(), "/backend/api-design")
		second := svc.GetDocumentContent(context.Background(), "backend/api-design")

		assert.Equal(t, "REST 风格", first)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), fetches.Load())
	})

	t.Run("unavailable page yields empty string", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodStatic), newPages(nil).fetcher(), newCodec(t), time.Minute)

		assert.Empty(t, svc.GetDocumentContent(context.Background(), "/missing"))
	})

	t.Run("out-of-scope URL is not fetched", func(t *testing.T) {
		t.Parallel()

		pages := newPages(nil)
		svc := search.NewService(staticCatalog(sitedoc.MethodStatic), pages.fetcher(), newCodec(t), time.Minute)

		assert.Empty(t, svc.GetDocumentContent(context.Background(), "https://evil.example.org/x.html"))
		assert.Zero(t, pages.total())
	})
}

func TestService_GetDocument(t *testing.T) {
	t.Parallel()

	t.Run("returns detail with logical path", func(t *testing.T) {
		t.Parallel()

		pages := newPages(map[string]*sitedoc.Page{
			"/frontend/components/index.html": {Title: "组件库", Text: "组件列表"},
		})
		svc := search.NewService(staticCatalog(sitedoc.MethodStatic), pages.fetcher(), newCodec(t), time.Minute)

		d := svc.GetDocument(context.Background(), "/frontend/components/")

		require.NotNil(t, d)
		assert.Equal(t, "/frontend/components/", d.Path)
		assert.Equal(t, "组件库", d.Title)
		assert.Equal(t, testBase+"/frontend/components/index.html", d.URL)
		assert.Equal(t, "组件列表", d.Content)
	})

	t.Run("falls back to catalog title", func(t *testing.T) {
		t.Parallel()

		pages := newPages(map[string]*sitedoc.Page{
			"/deployment.html": {Text: "部署步骤"},
		})
		svc := search.NewService(staticCatalog(sitedoc.MethodStatic,
			sitedoc.NewDocument("/deployment", "部署指南", "", ""),
		), pages.fetcher(), newCodec(t), time.Minute)

		d := svc.GetDocument(context.Background(), "/deployment")

		require.NotNil(t, d)
		assert.Equal(t, "部署指南", d.Title)
	})

	t.Run("nil when unavailable", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodStatic), newPages(nil).fetcher(), newCodec(t), time.Minute)

		assert.Nil(t, svc.GetDocument(context.Background(), "/missing"))
	})
}

func TestService_GetDocumentMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("converts content HTML", func(t *testing.T) {
		t.Parallel()

		pages := newPages(map[string]*sitedoc.Page{
			"/deployment.html": {Text: "部署", ContentHTML: "<h1>部署</h1>"},
		})
		svc := search.NewService(staticCatalog(sitedoc.MethodStatic), pages.fetcher(), newCodec(t), time.Minute)
		svc.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<h1>部署</h1>", html)
				return "# 部署", nil
			},
		}

		assert.Equal(t, "# 部署", svc.GetDocumentMarkdown(context.Background(), "/deployment"))
	})

	t.Run("empty without converter", func(t *testing.T) {
		t.Parallel()

		svc := search.NewService(staticCatalog(sitedoc.MethodStatic), newPages(nil).fetcher(), newCodec(t), time.Minute)

		assert.Empty(t, svc.GetDocumentMarkdown(context.Background(), "/deployment"))
	})
}

func TestService_GetDocumentStructure(t *testing.T) {
	t.Parallel()

	svc := search.NewService(staticCatalog(sitedoc.MethodSitemap, catalogDocs(t)...), newPages(nil).fetcher(), newCodec(t), time.Minute)

	s := svc.GetDocumentStructure(context.Background())

	assert.Len(t, s.Frontend, 2)
	assert.Len(t, s.Backend, 1)
	assert.Len(t, s.General, 2)
	assert.Equal(t, sitedoc.DocumentNode{Path: "/backend/database", Title: "数据库"}, s.Backend[0])
}

func TestService_SiteInfo(t *testing.T) {
	t.Parallel()

	svc := search.NewService(staticCatalog(sitedoc.MethodCrawl, catalogDocs(t)...), newPages(nil).fetcher(), newCodec(t), search.DefaultSearchTTL)
	svc.ContentTTL = crawl.DefaultContentTTL
	svc.CatalogTTL = crawl.DefaultCatalogTTL
	svc.ContentCache = &mock.Sizer{LenFn: func() int { return 7 }}

	info := svc.SiteInfo(context.Background())

	assert.Equal(t, testBase, info.BaseURL)
	assert.Equal(t, search.Version, info.Version)
	assert.Equal(t, sitedoc.MethodCrawl, info.DiscoveryMethod)
	assert.Equal(t, 5, info.DocumentCount)
	assert.Equal(t, 7, info.ContentCacheSize)
	assert.Equal(t, 10*time.Minute, info.SearchTTL)
	assert.Equal(t, 5*time.Minute, info.ContentTTL)
	assert.Equal(t, 30*time.Minute, info.CatalogTTL)
	assert.Contains(t, info.Features, "sitemap-parsing")
}
