package crawl_test

import (
	"context"
	"testing"

	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternStrategy_Discover(t *testing.T) {
	t.Parallel()

	t.Run("returns seeds when index pages are unreachable", func(t *testing.T) {
		t.Parallel()

		s := crawl.NewPatternStrategy(newPageSet(nil).fetcher(), newCodec(t))

		docs, err := s.Discover(context.Background())

		require.NoError(t, err)
		require.Len(t, docs, len(sitedoc.DefaultSeeds()))
		assert.Equal(t, "/", docs[0].Path)
		assert.Equal(t, "纵横框架文档", docs[0].Title)
		assert.Equal(t, testBase+"/index.html", docs[0].URL)
		assert.Equal(t, testBase+"/frontend/components/index.html", docs[2].URL)
	})

	t.Run("adds children of index pages", func(t *testing.T) {
		t.Parallel()

		pages := newPageSet(map[string]*sitedoc.Page{
			testBase + "/frontend/components/index.html": {Links: []sitedoc.Link{
				{URL: testBase + "/frontend/components/z-dialog.html", Text: "z-dialog"},
				{URL: testBase + "/frontend/components/z-table.html"},
				{URL: testBase + "/frontend/components/"},
				{URL: testBase + "/backend/database.html", Text: "数据库"},
				{URL: testBase + "/frontend/components/logo.png"},
			}},
		})
		s := crawl.NewPatternStrategy(pages.fetcher(), newCodec(t))

		docs, err := s.Discover(context.Background())

		require.NoError(t, err)
		require.Len(t, docs, len(sitedoc.DefaultSeeds())+2)
		extra := docs[len(docs)-2:]
		assert.Equal(t, "/frontend/components/z-dialog", extra[0].Path)
		assert.Equal(t, "z-dialog", extra[0].Title)
		assert.Equal(t, "/frontend/components/z-table", extra[1].Path)
		assert.Equal(t, "Frontend/Components/Z Table", extra[1].Title)
		assert.Equal(t, sitedoc.CategoryFrontend, extra[1].Category)
	})

	t.Run("probes every index page", func(t *testing.T) {
		t.Parallel()

		pages := newPageSet(nil)
		s := crawl.NewPatternStrategy(pages.fetcher(), newCodec(t))

		_, err := s.Discover(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			testBase + "/frontend/components/index.html",
			testBase + "/frontend/guides/index.html",
		}, pages.Requested())
	})

	t.Run("seeds only without a fetcher", func(t *testing.T) {
		t.Parallel()

		s := crawl.NewPatternStrategy(nil, newCodec(t))

		docs, err := s.Discover(context.Background())

		require.NoError(t, err)
		assert.Len(t, docs, len(sitedoc.DefaultSeeds()))
	})

	t.Run("name is pattern", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sitedoc.MethodPattern, crawl.NewPatternStrategy(nil, newCodec(t)).Name())
	})
}
