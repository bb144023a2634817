package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.DiscoveryStrategy = (*LoggingStrategy)(nil)

// LoggingStrategy logs each discovery run.
type LoggingStrategy struct {
	next   sitedoc.DiscoveryStrategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next sitedoc.DiscoveryStrategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Name delegates to the wrapped strategy.
func (s *LoggingStrategy) Name() sitedoc.DiscoveryMethod {
	return s.next.Name()
}

// Discover delegates to the wrapped strategy and logs the outcome.
func (s *LoggingStrategy) Discover(ctx context.Context) (docs []*sitedoc.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("discovery",
			"method", s.next.Name(),
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx)
}
