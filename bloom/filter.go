// Package bloom provides a probabilistic visited set for crawl
// deduplication.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// crawlHeadroom and crawlFPRate size a filter for a crawl budget. The
// filter holds every link seen on visited pages, which is many times the
// number of pages visited.
const (
	crawlHeadroom = 10
	crawlFPRate   = 0.001
)

// Filter tracks visited keys. False positives are possible; false
// negatives are not.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewCrawlFilter creates a filter sized for a crawl visiting at most
// budget pages.
func NewCrawlFilter(budget int) *Filter {
	n := uint(max(budget, 1)) * crawlHeadroom
	return NewFilter(n, crawlFPRate)
}

// Add records a key.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// Test returns true if the key might have been recorded.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}

// TestAndAdd records key and reports whether it might have been recorded
// before.
func (f *Filter) TestAndAdd(key string) bool {
	return f.f.TestAndAddString(key)
}

// EstimatedCount returns the approximate number of recorded keys.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
