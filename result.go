package schemagen

import "time"

// Kind identifies the type of schema generated for a page.
type Kind string

// Kind constants.
const (
	KindBreadcrumb Kind = "breadcrumb"
	KindArticle    Kind = "article"
)

// Validate returns EINVALID for an unknown kind.
func (k Kind) Validate() error {
	switch k {
	case KindBreadcrumb, KindArticle:
		return nil
	default:
		return Errorf(EINVALID, "unknown schema kind %q", k)
	}
}

// Result is the outcome of generating markup for one input URL.
// Exactly one of Err and Markup is set.
type Result struct {
	// Position is the index of URL in the input batch.
	Position int
	URL      string
	Kind     Kind

	// Schema is the JSON-LD object: *BreadcrumbListSchema or *ArticleJSONLD.
	Schema any
	Markup string

	// Metadata is the scraped page metadata of an article.
	Metadata *ArticleMetadata

	GeneratedAt time.Time
	Err         error
}

// Progress reports progress during batch generation.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called as URLs are processed.
type ProgressFunc func(Progress)
