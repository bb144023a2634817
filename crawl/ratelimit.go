package crawl

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/sitedoc"
	"golang.org/x/time/rate"
)

var _ sitedoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps one token bucket per host so a crawl never sends
// more than rps requests per second to any single host. Host names are
// compared case-insensitively. A non-positive rate disables pacing.
type DomainLimiter struct {
	rps float64

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter creates a limiter allowing rps requests per second per
// host with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:   rps,
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to domain is allowed. It returns the context
// error if ctx ends first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	return d.bucket(domain).Wait(ctx)
}

// Len returns the number of hosts seen so far.
func (d *DomainLimiter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.hosts)
}

func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	key := strings.ToLower(domain)

	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.hosts[key]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.hosts[key] = l
	}
	return l
}
