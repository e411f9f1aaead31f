// Package batch generates schema markup for lists of page URLs.
// It coordinates metadata fetching, schema building, optional validation,
// and serialization, isolating failures to the URL that caused them.
package batch

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/schemagen"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs processed at once.
const DefaultConcurrency = 10

// Generator turns URLs into markup results.
type Generator struct {
	Breadcrumbs *schemagen.BreadcrumbBuilder
	Articles    *schemagen.ArticleBuilder

	// Metadata is required for article generation.
	Metadata schemagen.MetadataFetcher

	// Validator, if set, checks each schema before it is serialized.
	Validator schemagen.Validator

	Concurrency int

	// Now stamps results. Defaults to time.Now.
	Now func() time.Time
}

// Generate processes urls and returns one result per URL in input order.
// A failing URL sets Err on its own result and never stops the batch.
// Cancellation of ctx marks every unprocessed URL with the context error.
//
// Returns EINVALID for an empty URL list, an unknown kind, or a generator
// missing what the kind needs.
func (g *Generator) Generate(ctx context.Context, kind schemagen.Kind, urls []string, progress schemagen.ProgressFunc) ([]*schemagen.Result, error) {
	if len(urls) == 0 {
		return nil, schemagen.Errorf(schemagen.EINVALID, "Please enter at least one URL.")
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := g.check(kind); err != nil {
		return nil, err
	}

	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan *schemagen.Result, len(urls))
	var completed atomic.Int64
	total := len(urls)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			eg.Go(func() error {
				resultCh <- g.process(gctx, kind, i, url)
				return nil
			})
		}
		_ = eg.Wait()
		close(resultCh)
	}()

	results := make([]*schemagen.Result, len(urls))
	for res := range resultCh {
		results[res.Position] = res
		n := completed.Add(1)
		if progress != nil {
			progress(schemagen.Progress{
				URL:       res.URL,
				Completed: int(n),
				Total:     total,
				Error:     res.Err,
			})
		}
	}

	return results, nil
}

func (g *Generator) check(kind schemagen.Kind) error {
	switch kind {
	case schemagen.KindBreadcrumb:
		if g.Breadcrumbs == nil {
			return schemagen.Errorf(schemagen.EINVALID, "breadcrumb builder required")
		}
	case schemagen.KindArticle:
		if g.Articles == nil {
			return schemagen.Errorf(schemagen.EINVALID, "article builder required")
		}
		if g.Metadata == nil {
			return schemagen.Errorf(schemagen.EINVALID, "metadata fetcher required")
		}
	}
	return nil
}

// process generates the result for a single URL.
func (g *Generator) process(ctx context.Context, kind schemagen.Kind, position int, url string) *schemagen.Result {
	res := &schemagen.Result{
		Position: position,
		URL:      url,
		Kind:     kind,
	}

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	var err error
	switch kind {
	case schemagen.KindBreadcrumb:
		res.Schema, err = g.breadcrumb(url)
	case schemagen.KindArticle:
		res.Schema, res.Metadata, err = g.article(ctx, url)
	}
	if err != nil {
		res.Err = err
		return res
	}

	if g.Validator != nil {
		if err := g.Validator.Validate(kind, res.Schema); err != nil {
			res.Err = err
			return res
		}
	}

	markup, err := schemagen.Markup(res.Schema)
	if err != nil {
		res.Err = err
		return res
	}
	res.Markup = markup

	now := g.Now
	if now == nil {
		now = time.Now
	}
	res.GeneratedAt = now()

	return res
}

func (g *Generator) breadcrumb(url string) (*schemagen.BreadcrumbListSchema, error) {
	list, err := g.Breadcrumbs.Build(url)
	if err != nil {
		return nil, err
	}
	return list.JSONLD(), nil
}

func (g *Generator) article(ctx context.Context, url string) (*schemagen.ArticleJSONLD, *schemagen.ArticleMetadata, error) {
	if _, err := schemagen.ParsePageURL(url); err != nil {
		return nil, nil, err
	}
	meta, err := g.Metadata.FetchMetadata(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	article, err := g.Articles.Build(url, meta)
	if err != nil {
		return nil, nil, err
	}
	return article.JSONLD(), meta, nil
}
