package schemagen

import (
	"context"
	"io"
	"time"
)

// Record is a generated markup block kept for later export.
type Record struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"imageUrl"`
	Markup      string    `json:"markup"`
	MarkupHash  string    `json:"markupHash"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	if r.Markup == "" {
		return Errorf(EINVALID, "record markup required")
	}
	return nil
}

// NewRecord returns the record of a successful result, or nil if the
// result failed.
func NewRecord(res *Result) *Record {
	if res == nil || res.Err != nil {
		return nil
	}
	rec := &Record{
		Kind:        res.Kind,
		SourceURL:   res.URL,
		Markup:      res.Markup,
		GeneratedAt: res.GeneratedAt,
	}
	if res.Metadata != nil {
		rec.Title = res.Metadata.Headline
		rec.ImageURL = res.Metadata.ImageURL
	}
	return rec
}

// RecordService represents a service for managing generation history.
type RecordService interface {
	// CreateRecord stores a new record, assigning its ID and hash.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecords removes records matching the filter and returns how
	// many were removed.
	DeleteRecords(ctx context.Context, filter RecordFilter) (int, error)
}

// RecordFilter represents a filter for FindRecords and DeleteRecords.
type RecordFilter struct {
	ID        *string `json:"id"`
	Kind      *Kind   `json:"kind"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordStore persists records with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type RecordStore interface {
	Save(ctx context.Context, rec *Record) error
	Commit() error
	Abort() error
}

// Exporter writes records of one kind to a tabular document.
type Exporter interface {
	Export(w io.Writer, kind Kind, records []*Record) error
}

// Validator checks generated JSON-LD objects for structural well-formedness.
type Validator interface {
	// Validate returns EINVALID describing every structural problem of
	// schema, which must be of the given kind.
	Validate(kind Kind, schema any) error
}
