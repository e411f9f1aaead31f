package mock

import (
	"context"

	"github.com/fwojciec/schemagen"
)

var _ schemagen.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of schemagen.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ schemagen.MetadataFetcher = (*MetadataFetcher)(nil)

// MetadataFetcher is a mock implementation of schemagen.MetadataFetcher.
type MetadataFetcher struct {
	FetchMetadataFn func(ctx context.Context, url string) (*schemagen.ArticleMetadata, error)
}

func (f *MetadataFetcher) FetchMetadata(ctx context.Context, url string) (*schemagen.ArticleMetadata, error) {
	return f.FetchMetadataFn(ctx, url)
}

var _ schemagen.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of schemagen.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
