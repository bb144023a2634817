package crawl_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/mock"
	"github.com/stretchr/testify/require"
)

const testBase = "https://docs.example.com/zongheng-doc"

func newCodec(t *testing.T) *sitedoc.PathCodec {
	t.Helper()
	codec, err := sitedoc.NewPathCodec(testBase)
	require.NoError(t, err)
	return codec
}

// pageSet serves pages by URL and records every requested URL.
type pageSet struct {
	mu        sync.Mutex
	pages     map[string]*sitedoc.Page
	requested []string
}

func newPageSet(pages map[string]*sitedoc.Page) *pageSet {
	return &pageSet{pages: pages}
}

func (s *pageSet) fetcher() *mock.ContentFetcher {
	return &mock.ContentFetcher{
		FetchPageFn: func(ctx context.Context, url string) *sitedoc.Page {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.requested = append(s.requested, url)
			if p, ok := s.pages[url]; ok {
				cp := *p
				cp.URL = url
				return &cp
			}
			return &sitedoc.Page{URL: url}
		},
	}
}

func (s *pageSet) Requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requested...)
}

func link(path string) sitedoc.Link {
	return sitedoc.Link{URL: testBase + path}
}
