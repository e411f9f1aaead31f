package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/schemagen"
)

// Ensure SitemapSource implements schemagen.URLSource.
var _ schemagen.URLSource = (*SitemapSource)(nil)

// SitemapSource discovers page URLs from website sitemaps via HTTP.
type SitemapSource struct {
	client *http.Client

	// Filter, if set, drops URLs that do not match.
	Filter *schemagen.URLFilter
}

// NewSitemapSource creates a new SitemapSource with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapSource(client *http.Client) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client}
}

// Discover finds all page URLs in a site's sitemaps, in sitemap order and
// without duplicates. Returns an empty slice (not nil) if no sitemap is found.
//
// When siteURL has a non-root path (e.g., https://example.com/blog/), only
// URLs under that path are returned.
func (s *SitemapSource) Discover(ctx context.Context, siteURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := url.Parse(siteURL)
	if err != nil || site.Host == "" {
		return nil, schemagen.Errorf(schemagen.EINVALID, "invalid site URL %q", siteURL)
	}

	prefix := site.Path
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if prefix == "/" {
		prefix = ""
	}

	root := &url.URL{Scheme: site.Scheme, Host: site.Host}
	sitemaps, err := s.locateSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	w := &sitemapWalker{source: s, visited: make(map[string]bool)}
	for _, sitemapURL := range sitemaps {
		if err := w.walk(ctx, sitemapURL); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(w.urls))
	seen := make(map[string]bool, len(w.urls))
	for _, u := range w.urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		if prefix != "" && !underPath(u, prefix) {
			continue
		}
		if !s.Filter.Match(u) {
			continue
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// underPath reports whether rawURL's path starts with prefix, which ends in "/".
// The prefix directory itself also matches.
func underPath(rawURL, prefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasPrefix(u.Path, prefix) || u.Path == strings.TrimSuffix(prefix, "/")
}

// locateSitemaps reads Sitemap: directives from robots.txt and falls back
// to /sitemap.xml.
func (s *SitemapSource) locateSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if sitemaps, err := s.robotsSitemaps(ctx, robots); err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	ok, err := s.exists(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if ok {
		return []string{fallback}, nil
	}
	return nil, nil
}

func (s *SitemapSource) robotsSitemaps(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	const directive = "sitemap:"
	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > len(directive) && strings.EqualFold(line[:len(directive)], directive) {
			if loc := strings.TrimSpace(line[len(directive):]); loc != "" {
				sitemaps = append(sitemaps, loc)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// sitemapWalker collects page URLs from a tree of sitemaps.
type sitemapWalker struct {
	source  *SitemapSource
	visited map[string]bool
	urls    []string
}

// walk fetches a sitemap and collects its URLs, descending into sitemap
// indexes. Each sitemap is processed at most once.
func (w *sitemapWalker) walk(ctx context.Context, sitemapURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.visited[sitemapURL] {
		return nil
	}
	w.visited[sitemapURL] = true

	body, err := w.source.get(ctx, sitemapURL)
	if err != nil {
		return err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return schemagen.Errorf(schemagen.EPARSE, "parsing sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return schemagen.Errorf(schemagen.EPARSE, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		for _, child := range locs(root, "sitemap") {
			if err := w.walk(ctx, child); err != nil {
				return err
			}
		}
		return nil
	}

	w.urls = append(w.urls, locs(root, "url")...)
	return nil
}

// locs returns the non-empty <loc> texts of root's children named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if text := strings.TrimSpace(loc.Text()); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func (s *SitemapSource) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, schemagen.Errorf(schemagen.EFETCH, "%v", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, schemagen.Errorf(schemagen.EFETCH, "HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *SitemapSource) exists(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
