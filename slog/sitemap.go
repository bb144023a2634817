package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs each sitemap lookup. A failed lookup is
// logged at warn level since discovery falls through to crawling.
type LoggingSitemapService struct {
	next   sitedoc.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next sitedoc.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the outcome.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "sitemap discovery",
			"base", baseURL,
			"urls", len(urls),
			"duration", time.Since(begin),
			"code", sitedoc.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL)
}
