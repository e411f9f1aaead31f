package goquery_test

import (
	"testing"

	"github.com/fwojciec/schemagen"
	"github.com/fwojciec/schemagen/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:title and reads og:image", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Fallback Title | Site</title>
<meta property="og:title" content="  Building APIs in Go  ">
<meta property="og:image" content=" https://site.com/cover.png ">
</head>
<body><p>Body</p></body>
</html>`

		meta, err := goquery.NewMetadataExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, &schemagen.ArticleMetadata{
			Headline: "Building APIs in Go",
			ImageURL: "https://site.com/cover.png",
		}, meta)
	})

	t.Run("falls back to title element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>
  Plain Title
</title></head><body></body></html>`

		meta, err := goquery.NewMetadataExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Plain Title", meta.Headline)
		assert.Empty(t, meta.ImageURL)
	})

	t.Run("falls back to title when og:title is empty", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:title" content=""><title>Real</title></head></html>`

		meta, err := goquery.NewMetadataExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Real", meta.Headline)
	})

	t.Run("ignores og:image without content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title><meta property="og:image"></head></html>`

		meta, err := goquery.NewMetadataExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, meta.ImageURL)
	})

	t.Run("returns EPARSE without any title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:image" content="https://site.com/x.png"></head><body><h1>Heading</h1></body></html>`

		_, err := goquery.NewMetadataExtractor().Extract(html)

		require.Error(t, err)
		assert.Equal(t, schemagen.EPARSE, schemagen.ErrorCode(err))
	})

	t.Run("returns EPARSE for empty document", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewMetadataExtractor().Extract("")

		assert.Equal(t, schemagen.EPARSE, schemagen.ErrorCode(err))
	})
}
