package crawl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedoc"
)

// Retry defaults.
const (
	DefaultMaxAttempts    = 3
	DefaultAttemptTimeout = 10 * time.Second
	DefaultBaseDelay      = 1 * time.Second
)

var _ sitedoc.Fetcher = (*RetryFetcher)(nil)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// Fetch calls f.
func (f FetchFunc) Fetch(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

// RetryFetcher retries transient fetch failures with linear backoff.
// Each attempt runs under its own timeout. Permanent failures (ENOTFOUND,
// EINVALID) are returned immediately.
type RetryFetcher struct {
	Fetcher sitedoc.Fetcher

	// MaxAttempts is the total number of attempts. Defaults to 3.
	MaxAttempts int

	// AttemptTimeout bounds each attempt. Defaults to 10s.
	AttemptTimeout time.Duration

	// BaseDelay is multiplied by the attempt number to get the wait
	// before the next attempt. Zero disables waiting.
	BaseDelay time.Duration

	// Logger receives one line per retry. Nil disables logging.
	Logger *slog.Logger
}

// NewRetryFetcher wraps fetcher with the default retry policy.
func NewRetryFetcher(fetcher sitedoc.Fetcher) *RetryFetcher {
	return &RetryFetcher{
		Fetcher:        fetcher,
		MaxAttempts:    DefaultMaxAttempts,
		AttemptTimeout: DefaultAttemptTimeout,
		BaseDelay:      DefaultBaseDelay,
	}
}

// Fetch attempts to fetch url, retrying transient failures.
func (r *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := r.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, err := r.attempt(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !sitedoc.IsTransient(err) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		// Don't retry after the last attempt
		if attempt == maxAttempts {
			break
		}

		delay := time.Duration(attempt) * r.BaseDelay
		if r.Logger != nil {
			r.Logger.Debug("retrying fetch",
				"url", url,
				"attempt", attempt+1,
				"delay", delay,
				"err", err,
			)
		}

		if err := sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	return "", lastErr
}

func (r *RetryFetcher) attempt(ctx context.Context, url string) (string, error) {
	timeout := r.AttemptTimeout
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := r.Fetcher.Fetch(actx, url)
	if err != nil && ctx.Err() == nil && errors.Is(actx.Err(), context.DeadlineExceeded) {
		return "", sitedoc.Errorf(sitedoc.ETIMEOUT, "fetch of %s exceeded %s", url, timeout)
	}
	return body, err
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
