package mock

import (
	"context"
	"io"

	"github.com/fwojciec/schemagen"
)

var _ schemagen.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of schemagen.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *schemagen.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*schemagen.Record, error)
	FindRecordsFn    func(ctx context.Context, filter schemagen.RecordFilter) ([]*schemagen.Record, error)
	DeleteRecordsFn  func(ctx context.Context, filter schemagen.RecordFilter) (int, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *schemagen.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*schemagen.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter schemagen.RecordFilter) ([]*schemagen.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecords(ctx context.Context, filter schemagen.RecordFilter) (int, error) {
	return s.DeleteRecordsFn(ctx, filter)
}

var _ schemagen.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of schemagen.RecordStore.
type RecordStore struct {
	SaveFn   func(ctx context.Context, rec *schemagen.Record) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *RecordStore) Save(ctx context.Context, rec *schemagen.Record) error {
	return s.SaveFn(ctx, rec)
}

func (s *RecordStore) Commit() error {
	return s.CommitFn()
}

func (s *RecordStore) Abort() error {
	return s.AbortFn()
}

var _ schemagen.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of schemagen.Exporter.
type Exporter struct {
	ExportFn func(w io.Writer, kind schemagen.Kind, records []*schemagen.Record) error
}

func (e *Exporter) Export(w io.Writer, kind schemagen.Kind, records []*schemagen.Record) error {
	return e.ExportFn(w, kind, records)
}
