// Package goquery extracts article metadata from HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/schemagen"
)

// Ensure MetadataExtractor implements schemagen.MetadataExtractor at compile time.
var _ schemagen.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads the Open Graph title and image of a page.
// The headline is og:title when it has content, otherwise the <title>
// element. The image is og:image or empty.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// Extract returns the page metadata. Returns EPARSE if the page has neither
// an og:title nor a non-empty <title>.
func (e *MetadataExtractor) Extract(html string) (*schemagen.ArticleMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, schemagen.Errorf(schemagen.EPARSE, "failed to parse HTML: %v", err)
	}

	headline := metaContent(doc, "og:title")
	if headline == "" {
		headline = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if headline == "" {
		return nil, schemagen.Errorf(schemagen.EPARSE, "page has no og:title or title element")
	}

	return &schemagen.ArticleMetadata{
		Headline: headline,
		ImageURL: metaContent(doc, "og:image"),
	}, nil
}

// metaContent returns the trimmed content of the first <meta property=...>
// with the given property.
func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(`meta[property="` + property + `"]`).First().Attr("content")
	return strings.TrimSpace(content)
}
