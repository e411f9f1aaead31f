package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/schemagen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ schemagen.RecordService = (*RecordService)(nil)

// RecordService implements schemagen.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

const recordColumns = "id, kind, source_url, title, image_url, markup, markup_hash, generated_at"

// CreateRecord creates a new record. GeneratedAt defaults to now.
func (s *RecordService) CreateRecord(ctx context.Context, rec *schemagen.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.MarkupHash = hashMarkup(rec.Markup)
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now()
	}
	rec.GeneratedAt = rec.GeneratedAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, string(rec.Kind), rec.SourceURL, rec.Title, rec.ImageURL, rec.Markup, rec.MarkupHash,
		rec.GeneratedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*schemagen.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM records WHERE id = ?", id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, schemagen.Errorf(schemagen.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter schemagen.RecordFilter) ([]*schemagen.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records")
	appendWhere(&query, &args, filter)
	query.WriteString(" ORDER BY generated_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*schemagen.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteRecords removes records matching the filter's ID, Kind and
// SourceURL. Pagination fields are ignored. An empty filter removes
// every record.
func (s *RecordService) DeleteRecords(ctx context.Context, filter schemagen.RecordFilter) (int, error) {
	var query strings.Builder
	var args []any

	query.WriteString("DELETE FROM records")
	appendWhere(&query, &args, filter)

	result, err := s.db.ExecContext(ctx, query.String(), args...)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*schemagen.Record, error) {
	var rec schemagen.Record
	var kind, generatedAt string

	if err := row.Scan(&rec.ID, &kind, &rec.SourceURL, &rec.Title, &rec.ImageURL,
		&rec.Markup, &rec.MarkupHash, &generatedAt); err != nil {
		return nil, err
	}
	rec.Kind = schemagen.Kind(kind)

	var err error
	rec.GeneratedAt, err = parseRFC3339(generatedAt, "generated_at")
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
