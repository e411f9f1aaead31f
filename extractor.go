package schemagen

// MetadataExtractor reads article metadata out of an HTML page.
type MetadataExtractor interface {
	// Extract returns the page headline and image URL. The headline prefers
	// og:title over the page title; the image comes from og:image and may be
	// empty. Returns EPARSE if no headline can be found.
	Extract(html string) (*ArticleMetadata, error)
}
