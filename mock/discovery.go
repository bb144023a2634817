package mock

import (
	"context"

	"github.com/fwojciec/sitedoc"
)

var _ sitedoc.DiscoveryStrategy = (*DiscoveryStrategy)(nil)

// DiscoveryStrategy is a mock implementation of sitedoc.DiscoveryStrategy.
type DiscoveryStrategy struct {
	NameFn     func() sitedoc.DiscoveryMethod
	DiscoverFn func(ctx context.Context) ([]*sitedoc.Document, error)
}

func (s *DiscoveryStrategy) Name() sitedoc.DiscoveryMethod {
	return s.NameFn()
}

func (s *DiscoveryStrategy) Discover(ctx context.Context) ([]*sitedoc.Document, error) {
	return s.DiscoverFn(ctx)
}

var _ sitedoc.DocumentCatalog = (*DocumentCatalog)(nil)

// DocumentCatalog is a mock implementation of sitedoc.DocumentCatalog.
type DocumentCatalog struct {
	DiscoveryFn func(ctx context.Context) *sitedoc.Discovery
}

func (c *DocumentCatalog) Discovery(ctx context.Context) *sitedoc.Discovery {
	return c.DiscoveryFn(ctx)
}

var _ sitedoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitedoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
