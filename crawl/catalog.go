package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/lru"
	"golang.org/x/sync/singleflight"
)

// DefaultCatalogTTL is how long a discovery result is reused.
const DefaultCatalogTTL = 30 * time.Minute

const catalogKey = "catalog"

var _ sitedoc.DocumentCatalog = (*Catalog)(nil)

// Catalog caches the deduplicated output of a discovery chain.
type Catalog struct {
	Chain  *Chain
	Cache  *lru.Cache[string, *sitedoc.Discovery]
	Logger *slog.Logger

	group singleflight.Group
}

// NewCatalog creates a Catalog whose discovery is reused for ttl.
func NewCatalog(chain *Chain, ttl time.Duration, opts ...lru.Option) *Catalog {
	return &Catalog{
		Chain: chain,
		Cache: lru.MustNew[string, *sitedoc.Discovery](ttl, append([]lru.Option{lru.WithSize(1)}, opts...)...),
	}
}

// Discovery returns the cached discovery, running the chain when the cache
// is empty or expired. Concurrent refreshes share one run.
func (c *Catalog) Discovery(ctx context.Context) *sitedoc.Discovery {
	if d, ok := c.Cache.Get(catalogKey); ok {
		return d
	}

	v, _, _ := c.group.Do(catalogKey, func() (any, error) {
		if d, ok := c.Cache.Get(catalogKey); ok {
			return d, nil
		}
		d := c.Chain.Discover(ctx)
		d.Documents = Dedupe(d.Documents)
		logger := loggerOrDiscard(c.Logger)
		if err := ctx.Err(); err != nil {
			// A canceled refresh falls through to the static list; serve it
			// to this caller only.
			logger.Warn("catalog refresh interrupted", "method", d.Method, "err", err)
			return d, nil
		}
		c.Cache.Add(catalogKey, d)
		logger.Info("catalog refreshed",
			"method", d.Method,
			"count", len(d.Documents),
		)
		return d, nil
	})
	return v.(*sitedoc.Discovery)
}

// Dedupe removes documents with a repeated path, keeping the first, and
// drops documents that fail validation.
func Dedupe(docs []*sitedoc.Document) []*sitedoc.Document {
	seen := make(map[string]bool, len(docs))
	out := make([]*sitedoc.Document, 0, len(docs))
	for _, d := range docs {
		if d == nil || d.Validate() != nil || seen[d.Path] {
			continue
		}
		seen[d.Path] = true
		out = append(out, d)
	}
	return out
}
