package schemagen

import (
	"net/url"
	"strings"
)

// SchemaContext is the @context value of every generated object.
const SchemaContext = "https://schema.org"

// DefaultSeparator is the path delimiter used when none is configured.
const DefaultSeparator = "/"

// HomeLabel is the name of the first breadcrumb item.
const HomeLabel = "Home"

// BreadcrumbItem is one step of a breadcrumb trail.
type BreadcrumbItem struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	ItemURL  string `json:"item"`
}

// BreadcrumbList is an ordered breadcrumb trail. The first item is always
// the site root named HomeLabel.
type BreadcrumbList struct {
	Items []BreadcrumbItem `json:"items"`
}

// BreadcrumbListSchema is the JSON-LD form of a BreadcrumbList.
type BreadcrumbListSchema struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ItemListElement []ListItemSchema `json:"itemListElement"`
}

// ListItemSchema is the JSON-LD form of a BreadcrumbItem.
type ListItemSchema struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// JSONLD returns the schema.org representation of the list.
func (l *BreadcrumbList) JSONLD() *BreadcrumbListSchema {
	elements := make([]ListItemSchema, 0, len(l.Items))
	for _, item := range l.Items {
		elements = append(elements, ListItemSchema{
			Type:     "ListItem",
			Position: item.Position,
			Name:     item.Name,
			Item:     item.ItemURL,
		})
	}
	return &BreadcrumbListSchema{
		Context:         SchemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: elements,
	}
}

// BreadcrumbBuilder builds breadcrumb trails for pages of one site.
type BreadcrumbBuilder struct {
	// BaseURL is the site root. Trailing slashes are ignored.
	BaseURL string

	// Separator delimits path segments. Defaults to DefaultSeparator.
	Separator string

	// Labeler names the segments. Defaults to DefaultLabeler().
	Labeler *Labeler
}

// Build returns the breadcrumb trail for rawURL.
//
// Item URLs are built by appending separator and segment to the base URL and
// always end in "/", whatever the separator. Returns EINVALID if rawURL is
// not an absolute URL or the builder has no base URL.
func (b *BreadcrumbBuilder) Build(rawURL string) (*BreadcrumbList, error) {
	base := strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if base == "" {
		return nil, Errorf(EINVALID, "base URL required")
	}

	u, err := ParsePageURL(rawURL)
	if err != nil {
		return nil, err
	}

	sep := b.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	labeler := b.Labeler
	if labeler == nil {
		labeler = DefaultLabeler()
	}

	segments := splitPath(rawPath(u), sep)

	items := make([]BreadcrumbItem, 0, len(segments)+1)
	items = append(items, BreadcrumbItem{
		Position: 1,
		Name:     HomeLabel,
		ItemURL:  base,
	})

	cursor := base
	for i, segment := range segments {
		cursor += sep + segment
		items = append(items, BreadcrumbItem{
			Position: i + 2,
			Name:     labeler.Label(decodeSegment(segment)),
			ItemURL:  cursor + "/",
		})
	}

	return &BreadcrumbList{Items: items}, nil
}

// ParsePageURL parses rawURL and requires it to be absolute.
// Returns EINVALID otherwise.
func ParsePageURL(rawURL string) (*url.URL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, Errorf(EINVALID, "URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, Errorf(EINVALID, "invalid URL %q: must be absolute", rawURL)
	}
	return u, nil
}

// rawPath returns the path as written in the URL, without re-escaping
// characters a custom separator may use.
func rawPath(u *url.URL) string {
	if u.RawPath != "" {
		return u.RawPath
	}
	return u.EscapedPath()
}

// splitPath trims separator characters from both ends of path, splits it
// on sep and drops empty segments.
func splitPath(path, sep string) []string {
	var segments []string
	for _, part := range strings.Split(strings.Trim(path, sep), sep) {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

func decodeSegment(segment string) string {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}
