// Package readability extracts article metadata with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/schemagen"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements schemagen.MetadataExtractor at compile time.
var _ schemagen.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to read page metadata.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page headline and lead image.
func (e *Extractor) Extract(rawHTML string) (*schemagen.ArticleMetadata, error) {
	if rawHTML == "" {
		return nil, schemagen.Errorf(schemagen.EPARSE, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, schemagen.Errorf(schemagen.EPARSE, "readability: %v", err)
	}

	headline := strings.TrimSpace(article.Title)
	if headline == "" {
		return nil, schemagen.Errorf(schemagen.EPARSE, "page has no title")
	}

	return &schemagen.ArticleMetadata{
		Headline: headline,
		ImageURL: strings.TrimSpace(article.Image),
	}, nil
}
