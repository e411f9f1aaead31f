package schemagen

import "time"

// TimestampOffset is appended to every generated timestamp. It is a fixed
// literal and is not derived from the timestamp's location; consumers of the
// generated markup rely on it.
const TimestampOffset = "+05:30"

const timestampLayout = "2006-01-02T15:04:05"

// FormatTimestamp formats the wall clock of t with seconds precision followed
// by TimestampOffset.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout) + TimestampOffset
}

// ArticleMetadata holds what is scraped from an article page.
type ArticleMetadata struct {
	Headline string `json:"headline"`
	ImageURL string `json:"imageUrl"`
}

// OrganizationIdentity identifies the organization behind a site. The same
// identity is used as both author and publisher of generated articles.
type OrganizationIdentity struct {
	Name    string `json:"name" yaml:"name"`
	URL     string `json:"url" yaml:"url"`
	LogoURL string `json:"logoUrl" yaml:"logo_url"`
}

// ArticleSchema is a generated article description.
// DatePublished and DateModified are always equal.
type ArticleSchema struct {
	PageURL          string
	Headline         string
	ImageURL         string
	AuthorName       string
	AuthorURL        string
	PublisherName    string
	PublisherURL     string
	PublisherLogoURL string
	DatePublished    string
	DateModified     string
}

// BuildArticle maps page metadata and the organization identity onto an
// ArticleSchema stamped with now.
func BuildArticle(pageURL string, meta ArticleMetadata, org OrganizationIdentity, now time.Time) *ArticleSchema {
	stamp := FormatTimestamp(now)
	return &ArticleSchema{
		PageURL:          pageURL,
		Headline:         meta.Headline,
		ImageURL:         meta.ImageURL,
		AuthorName:       org.Name,
		AuthorURL:        org.URL,
		PublisherName:    org.Name,
		PublisherURL:     org.URL,
		PublisherLogoURL: org.LogoURL,
		DatePublished:    stamp,
		DateModified:     stamp,
	}
}

// ArticleJSONLD is the JSON-LD form of an ArticleSchema.
type ArticleJSONLD struct {
	Context          string             `json:"@context"`
	Type             string             `json:"@type"`
	MainEntityOfPage WebPageSchema      `json:"mainEntityOfPage"`
	Headline         string             `json:"headline"`
	Image            string             `json:"image"`
	Author           OrganizationSchema `json:"author"`
	Publisher        OrganizationSchema `json:"publisher"`
	DatePublished    string             `json:"datePublished"`
	DateModified     string             `json:"dateModified"`
}

// WebPageSchema is a schema.org WebPage reference.
type WebPageSchema struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// OrganizationSchema is a schema.org Organization.
type OrganizationSchema struct {
	Type string       `json:"@type"`
	Name string       `json:"name"`
	URL  string       `json:"url"`
	Logo *ImageSchema `json:"logo,omitempty"`
}

// ImageSchema is a schema.org ImageObject.
type ImageSchema struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// JSONLD returns the schema.org representation of the article.
func (a *ArticleSchema) JSONLD() *ArticleJSONLD {
	return &ArticleJSONLD{
		Context: SchemaContext,
		Type:    "Article",
		MainEntityOfPage: WebPageSchema{
			Type: "WebPage",
			ID:   a.PageURL,
		},
		Headline: a.Headline,
		Image:    a.ImageURL,
		Author: OrganizationSchema{
			Type: "Organization",
			Name: a.AuthorName,
			URL:  a.AuthorURL,
		},
		Publisher: OrganizationSchema{
			Type: "Organization",
			Name: a.PublisherName,
			URL:  a.PublisherURL,
			Logo: &ImageSchema{
				Type: "ImageObject",
				URL:  a.PublisherLogoURL,
			},
		},
		DatePublished: a.DatePublished,
		DateModified:  a.DateModified,
	}
}

// ArticleBuilder builds articles for one publisher using an injected clock.
type ArticleBuilder struct {
	Publisher OrganizationIdentity

	// Now returns the generation instant. Defaults to time.Now.
	Now func() time.Time
}

// Build returns the article for pageURL. Returns EINVALID if meta is nil.
func (b *ArticleBuilder) Build(pageURL string, meta *ArticleMetadata) (*ArticleSchema, error) {
	if meta == nil {
		return nil, Errorf(EINVALID, "article metadata required for %s", pageURL)
	}
	now := b.Now
	if now == nil {
		now = time.Now
	}
	return BuildArticle(pageURL, *meta, b.Publisher, now()), nil
}
