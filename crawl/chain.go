package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedoc"
)

// Chain tries discovery strategies in order and keeps the output of the
// first one that returns documents. Outputs are never merged.
type Chain struct {
	Strategies []sitedoc.DiscoveryStrategy

	// Static is returned when every strategy comes back empty.
	Static []*sitedoc.Document

	Logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewChain creates a Chain over strategies with the site's static
// fallback documents.
func NewChain(codec *sitedoc.PathCodec, strategies ...sitedoc.DiscoveryStrategy) *Chain {
	return &Chain{
		Strategies: strategies,
		Static:     sitedoc.StaticDocuments(codec),
	}
}

// Discover runs the chain. The result always holds at least one document
// as long as Static is non-empty.
func (c *Chain) Discover(ctx context.Context) *sitedoc.Discovery {
	logger := loggerOrDiscard(c.Logger)
	for _, s := range c.Strategies {
		docs, err := s.Discover(ctx)
		if err != nil {
			logger.Warn("discovery strategy failed",
				"method", s.Name(),
				"code", sitedoc.ErrorCode(err),
				"err", err,
			)
			continue
		}
		if len(docs) == 0 {
			logger.Info("discovery strategy found nothing", "method", s.Name())
			continue
		}
		return c.discovery(s.Name(), docs)
	}

	logger.Warn("all discovery strategies empty, using static documents", "count", len(c.Static))
	static := make([]*sitedoc.Document, len(c.Static))
	for i, d := range c.Static {
		cp := *d
		static[i] = &cp
	}
	return c.discovery(sitedoc.MethodStatic, static)
}

func (c *Chain) discovery(method sitedoc.DiscoveryMethod, docs []*sitedoc.Document) *sitedoc.Discovery {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return &sitedoc.Discovery{
		Method:       method,
		Documents:    docs,
		DiscoveredAt: now(),
	}
}
