package batch

import (
	"context"
	"time"

	"github.com/fwojciec/schemagen"
)

var _ schemagen.MetadataFetcher = (*PageMetadataFetcher)(nil)

// PageMetadataFetcher fetches a page and extracts its article metadata.
type PageMetadataFetcher struct {
	Fetcher   schemagen.Fetcher
	Extractor schemagen.MetadataExtractor

	// RateLimiter, if set, is waited on before every fetch attempt.
	RateLimiter schemagen.DomainLimiter

	// RetryDelays are the waits between fetch attempts.
	// Nil means DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// Log, if set, receives retry messages.
	Log LogFunc
}

// FetchMetadata returns the metadata of the page at url.
// Fetch failures are reported as EFETCH after retries are exhausted;
// extraction failures keep the extractor's code.
func (f *PageMetadataFetcher) FetchMetadata(ctx context.Context, url string) (*schemagen.ArticleMetadata, error) {
	delays := f.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetry(ctx, url, f.fetch, f.Log, delays)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if schemagen.ErrorCode(err) == schemagen.EFETCH {
			return nil, err
		}
		return nil, schemagen.Errorf(schemagen.EFETCH, "fetching %s: %v", url, err)
	}

	return f.Extractor.Extract(html)
}

func (f *PageMetadataFetcher) fetch(ctx context.Context, url string) (string, error) {
	if f.RateLimiter != nil {
		if err := f.RateLimiter.Wait(ctx, domainOf(url)); err != nil {
			return "", err
		}
	}
	return f.Fetcher.Fetch(ctx, url)
}
