package batch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/schemagen"
	"github.com/fwojciec/schemagen/batch"
	"github.com/fwojciec/schemagen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newGenerator() *batch.Generator {
	return &batch.Generator{
		Breadcrumbs: &schemagen.BreadcrumbBuilder{BaseURL: "https://example.com/"},
		Articles: &schemagen.ArticleBuilder{
			Publisher: schemagen.OrganizationIdentity{
				Name:    "Example",
				URL:     "https://example.com",
				LogoURL: "https://example.com/logo.png",
			},
			Now: func() time.Time { return fixedNow },
		},
		Now: func() time.Time { return fixedNow },
	}
}

func TestGenerator_Generate_Breadcrumbs(t *testing.T) {
	t.Parallel()

	t.Run("returns results in input order", func(t *testing.T) {
		t.Parallel()

		g := newGenerator()
		g.Concurrency = 2
		urls := []string{
			"https://example.com/a/",
			"https://example.com/b/c/",
			"https://example.com/",
			"https://example.com/d/",
		}

		results, err := g.Generate(context.Background(), schemagen.KindBreadcrumb, urls, nil)

		require.NoError(t, err)
		require.Len(t, results, 4)
		for i, res := range results {
			require.NoError(t, res.Err)
			assert.Equal(t, i, res.Position)
			assert.Equal(t, urls[i], res.URL)
			assert.Equal(t, schemagen.KindBreadcrumb, res.Kind)
			assert.Equal(t, fixedNow, res.GeneratedAt)
			assert.Contains(t, res.Markup, `"@type": "BreadcrumbList"`)
		}
		schema, ok := results[1].Schema.(*schemagen.BreadcrumbListSchema)
		require.True(t, ok)
		require.Len(t, schema.ItemListElement, 3)
		assert.Equal(t, "C", schema.ItemListElement[2].Name)
	})

	t.Run("isolates a malformed URL", func(t *testing.T) {
		t.Parallel()

		g := newGenerator()
		urls := []string{
			"https://example.com/a/",
			"not a url",
			"https://example.com/b/",
		}

		results, err := g.Generate(context.Background(), schemagen.KindBreadcrumb, urls, nil)

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.NoError(t, results[0].Err)
		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(results[1].Err))
		assert.Empty(t, results[1].Markup)
		assert.NoError(t, results[2].Err)
		assert.NotEmpty(t, results[2].Markup)
	})

	t.Run("reports progress for every URL", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var events []schemagen.Progress
		progress := func(p schemagen.Progress) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, p)
		}

		g := newGenerator()
		urls := []string{"https://example.com/a/", "bad", "https://example.com/b/"}

		_, err := g.Generate(context.Background(), schemagen.KindBreadcrumb, urls, progress)

		require.NoError(t, err)
		require.Len(t, events, 3)
		var failed int
		for i, e := range events {
			assert.Equal(t, i+1, e.Completed)
			assert.Equal(t, 3, e.Total)
			if e.Error != nil {
				failed++
				assert.Equal(t, "bad", e.URL)
			}
		}
		assert.Equal(t, 1, failed)
	})

	t.Run("applies validator", func(t *testing.T) {
		t.Parallel()

		g := newGenerator()
		g.Validator = &mock.Validator{
			ValidateFn: func(kind schemagen.Kind, _ any) error {
				assert.Equal(t, schemagen.KindBreadcrumb, kind)
				return schemagen.Errorf(schemagen.EINVALID, "missing itemListElement")
			},
		}

		results, err := g.Generate(context.Background(), schemagen.KindBreadcrumb, []string{"https://example.com/a/"}, nil)

		require.NoError(t, err)
		assert.Equal(t, "missing itemListElement", schemagen.ErrorMessage(results[0].Err))
		assert.Empty(t, results[0].Markup)
	})
}

func TestGenerator_Generate_Articles(t *testing.T) {
	t.Parallel()

	t.Run("builds article from fetched metadata", func(t *testing.T) {
		t.Parallel()

		g := newGenerator()
		g.Metadata = &mock.MetadataFetcher{
			FetchMetadataFn: func(_ context.Context, url string) (*schemagen.ArticleMetadata, error) {
				return &schemagen.ArticleMetadata{
					Headline: "Title of " + url,
					ImageURL: "https://example.com/img.png",
				}, nil
			},
		}

		results, err := g.Generate(context.Background(), schemagen.KindArticle, []string{"https://example.com/post/"}, nil)

		require.NoError(t, err)
		require.Len(t, results, 1)
		res := results[0]
		require.NoError(t, res.Err)
		require.NotNil(t, res.Metadata)
		assert.Equal(t, "Title of https://example.com/post/", res.Metadata.Headline)
		article, ok := res.Schema.(*schemagen.ArticleJSONLD)
		require.True(t, ok)
		assert.Equal(t, "2025-03-14T09:26:53+05:30", article.DatePublished)
		assert.Contains(t, res.Markup, `"headline": "Title of https://example.com/post/"`)
	})

	t.Run("isolates fetch and parse failures", func(t *testing.T) {
		t.Parallel()

		g := newGenerator()
		g.Metadata = &mock.MetadataFetcher{
			FetchMetadataFn: func(_ context.Context, url string) (*schemagen.ArticleMetadata, error) {
				switch url {
				case "https://example.com/down/":
					return nil, schemagen.Errorf(schemagen.EFETCH, "status 503")
				case "https://example.com/untitled/":
					return nil, schemagen.Errorf(schemagen.EPARSE, "no title")
				}
				return &schemagen.ArticleMetadata{Headline: "OK"}, nil
			},
		}
		urls := []string{
			"https://example.com/down/",
			"https://example.com/ok/",
			"https://example.com/untitled/",
		}

		results, err := g.Generate(context.Background(), schemagen.KindArticle, urls, nil)

		require.NoError(t, err)
		assert.Equal(t, schemagen.EFETCH, schemagen.ErrorCode(results[0].Err))
		assert.NoError(t, results[1].Err)
		assert.Equal(t, schemagen.EPARSE, schemagen.ErrorCode(results[2].Err))
	})

	t.Run("rejects malformed URL without fetching", func(t *testing.T) {
		t.Parallel()

		g := newGenerator()
		g.Metadata = &mock.MetadataFetcher{
			FetchMetadataFn: func(_ context.Context, _ string) (*schemagen.ArticleMetadata, error) {
				t.Error("unexpected fetch")
				return nil, errors.New("unexpected")
			},
		}

		results, err := g.Generate(context.Background(), schemagen.KindArticle, []string{"/relative/path"}, nil)

		require.NoError(t, err)
		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(results[0].Err))
	})

	t.Run("requires metadata fetcher", func(t *testing.T) {
		t.Parallel()

		g := newGenerator()

		_, err := g.Generate(context.Background(), schemagen.KindArticle, []string{"https://example.com/"}, nil)

		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
	})
}

func TestGenerator_Generate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty URL list", func(t *testing.T) {
		t.Parallel()

		_, err := newGenerator().Generate(context.Background(), schemagen.KindBreadcrumb, nil, nil)

		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
		assert.Equal(t, "Please enter at least one URL.", schemagen.ErrorMessage(err))
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		_, err := newGenerator().Generate(context.Background(), schemagen.Kind("faq"), []string{"https://example.com/"}, nil)

		assert.Equal(t, schemagen.EINVALID, schemagen.ErrorCode(err))
	})

	t.Run("canceled context marks every URL", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := newGenerator().Generate(ctx, schemagen.KindBreadcrumb, []string{"https://example.com/a/", "https://example.com/b/"}, nil)

		require.NoError(t, err)
		require.Len(t, results, 2)
		for _, res := range results {
			assert.ErrorIs(t, res.Err, context.Canceled)
		}
	})
}
