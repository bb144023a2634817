package sitedoc

import "context"

// Fetcher retrieves raw page bodies from URLs.
type Fetcher interface {
	// Fetch returns the body of a successful response.
	// A missing page is reported with ENOTFOUND; other failures with
	// EUNAVAILABLE or ETIMEOUT.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)
}
