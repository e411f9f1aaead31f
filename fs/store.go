// Package fs provides file-based storage for generated markup.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/schemagen"
	"github.com/goliatone/go-slug"
)

// HomeSlug names the file of the site root.
const HomeSlug = "home"

// Ensure Store implements schemagen.RecordStore at compile time.
var _ schemagen.RecordStore = (*Store)(nil)

// Store implements schemagen.RecordStore with atomic update semantics.
// Records are saved to a temporary directory, then moved atomically on Commit.
type Store struct {
	baseDir string
	name    string
	baseURL string

	mu    sync.Mutex
	names map[string]int
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
// baseURL is stripped from record URLs when naming files.
func NewStore(baseDir, name, baseURL string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
		baseURL: baseURL,
		names:   make(map[string]int),
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the record's markup to <slug>.html in the temp directory.
// A slug already used in this store gets a numeric suffix.
func (s *Store) Save(ctx context.Context, rec *schemagen.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := Filename(rec.SourceURL, s.baseURL)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.names[name]++
	if n := s.names[name]; n > 1 {
		name = fmt.Sprintf("%s-%d", name, n)
	}
	s.mu.Unlock()

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	path := filepath.Join(s.tempDir(), name+".html")
	return os.WriteFile(path, []byte(FormatRecord(rec)), 0644)
}

// FormatRecord returns the file content for a record: a comment naming the
// source URL followed by the markup block.
func FormatRecord(rec *schemagen.Record) string {
	var b strings.Builder
	b.WriteString("<!-- ")
	b.WriteString(strings.ReplaceAll(rec.SourceURL, "--", "%2D%2D"))
	b.WriteString(" -->\n")
	b.WriteString(rec.Markup)
	b.WriteString("\n")
	return b.String()
}

// Filename returns the slug naming the file of rawURL: the URL with
// baseURL removed, trimmed of slashes and slugified, or HomeSlug when
// nothing remains.
func Filename(rawURL, baseURL string) (string, error) {
	rest := rawURL
	if baseURL != "" {
		rest = strings.ReplaceAll(rest, baseURL, "")
	}
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return HomeSlug, nil
	}

	normalized, err := slug.Normalize(strings.ReplaceAll(rest, "/", "-"))
	if err != nil {
		return "", schemagen.Errorf(schemagen.EINVALID, "cannot name file for %s: %v", rawURL, err)
	}
	if normalized == "" {
		return HomeSlug, nil
	}
	return normalized, nil
}

// Commit replaces the output directory with the saved files.
func (s *Store) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved files.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
