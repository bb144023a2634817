// Package slog provides logging decorators for the sitedoc interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every fetch with its size, duration and error.
type LoggingFetcher struct {
	next   sitedoc.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitedoc.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"code", sitedoc.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
