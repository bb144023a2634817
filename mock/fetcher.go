package mock

import (
	"context"

	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sitedoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ sitedoc.ContentFetcher = (*ContentFetcher)(nil)

// ContentFetcher is a mock implementation of sitedoc.ContentFetcher.
type ContentFetcher struct {
	FetchPageFn func(ctx context.Context, url string) *sitedoc.Page
}

func (f *ContentFetcher) FetchPage(ctx context.Context, url string) *sitedoc.Page {
	return f.FetchPageFn(ctx, url)
}
