// Package http provides net/http implementations of sitedoc.Fetcher and
// sitedoc.SitemapService for statically hosted documentation sites.
package http

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/sitedoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies requests made by a Fetcher.
const DefaultUserAgent = "sitedoc/1.0 (+https://github.com/fwojciec/sitedoc)"

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 10 << 20

// Ensure Fetcher implements sitedoc.Fetcher at compile time.
var _ sitedoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies using HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	insecure  bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithInsecureSkipVerify disables certificate verification for this
// fetcher only. The setting lives on the fetcher's own transport and
// never affects other clients in the process.
func WithInsecureSkipVerify(skip bool) Option {
	return func(f *Fetcher) {
		f.insecure = skip
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if f.insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f
}

// Fetch retrieves the body at the given URL.
// A 404 or 410 response is ENOTFOUND, a timeout is ETIMEOUT and any other
// failure is EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", sitedoc.Errorf(sitedoc.EINVALID, "invalid request URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classifyTransportError(url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", sitedoc.Errorf(sitedoc.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return "", sitedoc.Errorf(sitedoc.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", classifyTransportError(url, err)
	}

	return string(body), nil
}

func classifyTransportError(url string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) && netErr.Timeout() {
		return sitedoc.Errorf(sitedoc.ETIMEOUT, "timeout fetching %s: %v", url, err)
	}
	return sitedoc.Errorf(sitedoc.EUNAVAILABLE, "fetching %s: %v", url, err)
}
