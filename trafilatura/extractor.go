// Package trafilatura extracts article metadata with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/schemagen"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements schemagen.MetadataExtractor at compile time.
var _ schemagen.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to read page metadata. Trafilatura merges
// Open Graph, JSON-LD and HTML metadata, which helps on pages whose og tags
// are missing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page headline and image.
func (e *Extractor) Extract(rawHTML string) (*schemagen.ArticleMetadata, error) {
	if rawHTML == "" {
		return nil, schemagen.Errorf(schemagen.EPARSE, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, schemagen.Errorf(schemagen.EPARSE, "trafilatura: %v", err)
	}

	headline := strings.TrimSpace(result.Metadata.Title)
	if headline == "" {
		return nil, schemagen.Errorf(schemagen.EPARSE, "page has no title")
	}

	return &schemagen.ArticleMetadata{
		Headline: headline,
		ImageURL: strings.TrimSpace(result.Metadata.Image),
	}, nil
}
