package mock

import "github.com/fwojciec/schemagen"

var _ schemagen.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of schemagen.MetadataExtractor.
type MetadataExtractor struct {
	ExtractFn func(html string) (*schemagen.ArticleMetadata, error)
}

func (e *MetadataExtractor) Extract(html string) (*schemagen.ArticleMetadata, error) {
	return e.ExtractFn(html)
}
