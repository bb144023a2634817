package crawl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.DiscoveryStrategy = (*PatternStrategy)(nil)

// PatternStrategy returns the site's known pages plus the children linked
// from a few index pages. It needs no sitemap and at most a couple of
// fetches, so it succeeds whenever the seed list is non-empty.
type PatternStrategy struct {
	// Pages fetches index pages. Nil skips probing.
	Pages sitedoc.ContentFetcher
	Codec *sitedoc.PathCodec

	Seeds      []sitedoc.Seed
	IndexPages []string

	Logger *slog.Logger
}

// NewPatternStrategy creates a PatternStrategy with the default seeds and
// index pages.
func NewPatternStrategy(pages sitedoc.ContentFetcher, codec *sitedoc.PathCodec) *PatternStrategy {
	return &PatternStrategy{
		Pages:      pages,
		Codec:      codec,
		Seeds:      sitedoc.DefaultSeeds(),
		IndexPages: sitedoc.DefaultIndexPages(),
	}
}

// Name returns MethodPattern.
func (s *PatternStrategy) Name() sitedoc.DiscoveryMethod {
	return sitedoc.MethodPattern
}

// Discover returns seed documents followed by index-page children.
func (s *PatternStrategy) Discover(ctx context.Context) ([]*sitedoc.Document, error) {
	seen := make(map[string]bool)
	var docs []*sitedoc.Document
	add := func(path, title string) {
		if seen[path] {
			return
		}
		seen[path] = true
		docs = append(docs, sitedoc.NewDocument(path, title, s.Codec.ToFetchURL(path), ""))
	}

	for _, seed := range s.Seeds {
		add(seed.Path, seed.Title)
	}

	if s.Pages == nil {
		return docs, nil
	}
	logger := loggerOrDiscard(s.Logger)
	for _, index := range s.IndexPages {
		if err := ctx.Err(); err != nil {
			return docs, err
		}
		page := s.Pages.FetchPage(ctx, s.Codec.ToFetchURL(index))
		found := 0
		for _, link := range page.Links {
			path, ok := s.childPath(index, link.URL)
			if !ok || seen[path] {
				continue
			}
			title := link.Text
			if title == "" {
				title = fallbackTitle(path)
			}
			add(path, title)
			found++
		}
		logger.Debug("probed index page", "path", index, "count", found)
	}

	return docs, nil
}

// childPath returns the logical path of rawURL if it names an eligible
// document below index.
func (s *PatternStrategy) childPath(index, rawURL string) (string, bool) {
	if !s.Codec.InScope(rawURL) {
		return "", false
	}
	path, err := s.Codec.ToLogicalPath(rawURL)
	if err != nil || !sitedoc.IsEligibleDocumentPath(path) {
		return "", false
	}
	prefix := strings.TrimSuffix(index, "/") + "/"
	if path == index || !strings.HasPrefix(path, prefix) {
		return "", false
	}
	return path, true
}
