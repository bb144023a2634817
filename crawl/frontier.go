package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/sitedoc"
	"github.com/fwojciec/sitedoc/bloom"
)

// Compile-time interface verification.
var _ sitedoc.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory first-in first-out URL queue with Bloom filter
// deduplication, giving breadth-first traversal order.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []sitedoc.Link
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// NewCrawlFrontier creates a Frontier sized for a crawl that visits at
// most budget pages.
func NewCrawlFrontier(budget int) *Frontier {
	return &Frontier{
		seen: bloom.NewCrawlFilter(budget),
	}
}

// Push adds a link to the back of the queue.
// Returns false if the URL has already been seen.
// URL fragments are stripped before deduplication - URLs differing only by fragment
// are considered duplicates.
func (f *Frontier) Push(link sitedoc.Link) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(link.URL)
	if f.seen.TestAndAdd(url) {
		return false
	}

	// Store the URL without fragment
	link.URL = url
	f.queue = append(f.queue, link)
	return true
}

// Pop returns the oldest queued link.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (sitedoc.Link, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return sitedoc.Link{}, false
	}
	link := f.queue[0]
	f.queue[0] = sitedoc.Link{}
	f.queue = f.queue[1:]
	return link, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
