// Package slog provides logging decorators for schemagen services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/schemagen"
)

// Ensure LoggingFetcher implements schemagen.Fetcher.
var _ schemagen.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   schemagen.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next schemagen.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingMetadataFetcher implements schemagen.MetadataFetcher.
var _ schemagen.MetadataFetcher = (*LoggingMetadataFetcher)(nil)

// LoggingMetadataFetcher wraps a MetadataFetcher with logging.
type LoggingMetadataFetcher struct {
	next   schemagen.MetadataFetcher
	logger *slog.Logger
}

// NewLoggingMetadataFetcher creates a new LoggingMetadataFetcher.
func NewLoggingMetadataFetcher(next schemagen.MetadataFetcher, logger *slog.Logger) *LoggingMetadataFetcher {
	return &LoggingMetadataFetcher{next: next, logger: logger}
}

// FetchMetadata delegates to the wrapped fetcher and logs the headline found.
func (f *LoggingMetadataFetcher) FetchMetadata(ctx context.Context, url string) (meta *schemagen.ArticleMetadata, err error) {
	defer func(begin time.Time) {
		var headline string
		if meta != nil {
			headline = meta.Headline
		}
		f.logger.Info("metadata",
			"url", url,
			"headline", headline,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchMetadata(ctx, url)
}
