package schemagen

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// MetadataFetcher retrieves article metadata for a page.
type MetadataFetcher interface {
	// FetchMetadata returns the metadata of the page at url.
	// Returns EFETCH if the page cannot be retrieved and EPARSE if it has
	// no usable title.
	FetchMetadata(ctx context.Context, url string) (*ArticleMetadata, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
