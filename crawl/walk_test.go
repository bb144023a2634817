package crawl_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/crawl"
	"github.com/fwojciec/sitedoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlStrategy_Discover(t *testing.T) {
	t.Parallel()

	t.Run("walks breadth-first from the root", func(t *testing.T) {
		t.Parallel()

		pages := newPageSet(map[string]*sitedoc.Page{
			testBase + "/index.html": {Title: "Home", Text: "home", Links: []sitedoc.Link{
				link("/frontend/guides/getting-started.html"),
				link("/backend/getting-started"),
				link("/assets/app.js"),
				{URL: "https://other.example.com/zongheng-doc/x.html"},
			}},
			testBase + "/frontend/guides/getting-started.html": {Title: "前端", Text: "frontend", Links: []sitedoc.Link{
				link("/frontend/components/z-dialog.html"),
				link("/"),
			}},
			testBase + "/backend/getting-started.html":      {Title: "后端", Text: "backend"},
			testBase + "/frontend/components/z-dialog.html": {Title: "z-dialog", Text: "dialog"},
		})
		s := crawl.NewCrawlStrategy(pages.fetcher(), newCodec(t))

		docs, err := s.Discover(context.Background())

		require.NoError(t, err)
		var paths []string
		for _, d := range docs {
			paths = append(paths, d.Path)
		}
		assert.Equal(t, []string{
			"/",
			"/frontend/guides/getting-started",
			"/backend/getting-started",
			"/frontend/components/z-dialog",
		}, paths)
		assert.Equal(t, "home", docs[0].Content)
		assert.Equal(t, sitedoc.CategoryBackend, docs[2].Category)
	})

	t.Run("visits at most the budget on a cyclic unbounded graph", func(t *testing.T) {
		t.Parallel()

		var fetched atomic.Int32
		pages := &mock.ContentFetcher{
			FetchPageFn: func(ctx context.Context, url string) *sitedoc.Page {
				n := fetched.Add(1)
				return &sitedoc.Page{URL: url, Text: "page", Links: []sitedoc.Link{
					link("/"),
					link(fmt.Sprintf("/frontend/p%d", n*2)),
					link(fmt.Sprintf("/frontend/p%d", n*2+1)),
				}}
			},
		}
		s := crawl.NewCrawlStrategy(pages, newCodec(t))

		docs, err := s.Discover(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int32(crawl.DefaultCrawlBudget), fetched.Load())
		assert.Len(t, docs, crawl.DefaultCrawlBudget)
		seen := make(map[string]bool)
		for _, d := range docs {
			assert.False(t, seen[d.Path], "duplicate path %s", d.Path)
			seen[d.Path] = true
		}
	})

	t.Run("respects custom budget", func(t *testing.T) {
		t.Parallel()

		var fetched atomic.Int32
		pages := &mock.ContentFetcher{
			FetchPageFn: func(ctx context.Context, url string) *sitedoc.Page {
				n := fetched.Add(1)
				return &sitedoc.Page{URL: url, Text: "page", Links: []sitedoc.Link{
					link(fmt.Sprintf("/p%d", n)),
				}}
			},
		}
		s := crawl.NewCrawlStrategy(pages, newCodec(t))
		s.MaxPages = 3

		docs, err := s.Discover(context.Background())

		require.NoError(t, err)
		assert.Len(t, docs, 3)
		assert.Equal(t, int32(3), fetched.Load())
	})

	t.Run("root without links yields root only", func(t *testing.T) {
		t.Parallel()

		pages := newPageSet(map[string]*sitedoc.Page{
			testBase + "/index.html": {Text: "home"},
		})
		s := crawl.NewCrawlStrategy(pages.fetcher(), newCodec(t))

		docs, err := s.Discover(context.Background())

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, sitedoc.PlaceholderTitle, docs[0].Title)
	})

	t.Run("unreachable root yields nothing", func(t *testing.T) {
		t.Parallel()

		pages := newPageSet(nil)
		s := crawl.NewCrawlStrategy(pages.fetcher(), newCodec(t))

		docs, err := s.Discover(context.Background())

		require.NoError(t, err)
		assert.Empty(t, docs)
		assert.Equal(t, []string{testBase + "/index.html"}, pages.Requested())
	})

	t.Run("uses link text when page has no title", func(t *testing.T) {
		t.Parallel()

		pages := newPageSet(map[string]*sitedoc.Page{
			testBase + "/index.html": {Text: "home", Links: []sitedoc.Link{
				{URL: testBase + "/deployment.html", Text: "部署指南"},
			}},
			testBase + "/deployment.html": {Text: "deploy"},
		})
		s := crawl.NewCrawlStrategy(pages.fetcher(), newCodec(t))

		docs, err := s.Discover(context.Background())

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "部署指南", docs[1].Title)
	})

	t.Run("waits on limiter per page", func(t *testing.T) {
		t.Parallel()

		var waits atomic.Int32
		pages := newPageSet(map[string]*sitedoc.Page{
			testBase + "/index.html":      {Text: "home", Links: []sitedoc.Link{link("/deployment")}},
			testBase + "/deployment.html": {Text: "deploy"},
		})
		s := crawl.NewCrawlStrategy(pages.fetcher(), newCodec(t))
		s.Limiter = &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				assert.Equal(t, "docs.example.com", domain)
				waits.Add(1)
				return nil
			},
		}

		_, err := s.Discover(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int32(2), waits.Load())
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := crawl.NewCrawlStrategy(newPageSet(nil).fetcher(), newCodec(t))

		_, err := s.Discover(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}
